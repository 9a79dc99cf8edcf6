// Package store declares the persistence contracts of the API. Implementations
// live in the mongodb (production) and memory (tests, local runs) subpackages.
package store

import (
	"context"
	"errors"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

type UserStore interface {
	// Create assigns u.ID and returns ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIDs returns the users that exist among ids, in no particular order.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	// Delete is a no-op when the user does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProfileStore interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	// Upsert applies update to the user's profile, creating it when absent,
	// and returns the stored document.
	Upsert(ctx context.Context, userID primitive.ObjectID, update *models.ProfileUpdate) (*models.Profile, error)
	// PushExperience and PushHobby insert at the head of the list.
	PushExperience(ctx context.Context, userID primitive.ObjectID, e models.Experience) (*models.Profile, error)
	PushHobby(ctx context.Context, userID primitive.ObjectID, h models.Hobby) (*models.Profile, error)
	// PullExperience and PullHobby remove the entry with entryID, if any.
	PullExperience(ctx context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error)
	PullHobby(ctx context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error)
	// DeleteByUser is a no-op when the profile does not exist.
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
}
