package services

import (
	"context"
	"errors"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostService struct {
	posts store.PostStore
	users store.UserStore
}

func NewPostService(posts store.PostStore, users store.UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

type PostInput struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

// Create stores a post stamped with the author's current name and avatar.
func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, in PostInput) (*models.Post, error) {
	if verr := utils.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("post.Create user", err)
	}

	post := &models.Post{
		UserID: userID,
		Text:   in.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		Date:   time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, internal("post.Create", err)
	}
	return post, nil
}
