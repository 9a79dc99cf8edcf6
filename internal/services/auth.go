package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/config"
	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"github.com/AnshRaj112/devconnector-backend/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService registers users, checks credentials and resolves tokens.
// It keeps no session state: the signed token is the only proof of identity.
type AuthService struct {
	users  store.UserStore
	hasher *utils.PasswordHasher
	tokens *utils.TokenCodec
}

func NewAuthService(users store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		users:  users,
		hasher: utils.NewPasswordHasher(cfg.BcryptCost),
		tokens: utils.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL),
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// Register validates input, rejects a taken email, derives the avatar and
// stores the user with a salted password hash. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if verr := utils.ValidateStruct(&in); verr != nil {
		return nil, invalid(verr)
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("auth.Register lookup", err)
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, internal("auth.Register hash", err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Avatar:   utils.GravatarURL(in.Email),
		Date:     time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, internal("auth.Register create", err)
	}
	return user, nil
}

// Login returns a signed token for valid credentials. An unknown email and a
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if verr := utils.ValidateStruct(&in); verr != nil {
		return "", invalid(verr)
	}

	user, err := s.users.GetByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", internal("auth.Login lookup", err)
	}

	ok, err := s.hasher.VerifyPassword(in.Password, user.Password)
	if err != nil {
		return "", internal("auth.Login verify", err)
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", internal("auth.Login issue", err)
	}
	return token, nil
}

// Authenticate decodes a token into the user identifier it was issued for.
func (s *AuthService) Authenticate(token string) (primitive.ObjectID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return primitive.NilObjectID, ErrNoToken
	}
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return primitive.NilObjectID, &Error{Kind: KindUnauthorized, Msg: ErrBadToken.Msg, Err: err}
	}
	id, err := primitive.ObjectIDFromHex(claims.User.ID)
	if err != nil {
		return primitive.NilObjectID, &Error{Kind: KindUnauthorized, Msg: ErrBadToken.Msg, Err: err}
	}
	return id, nil
}

// CurrentUser loads the caller's user record.
func (s *AuthService) CurrentUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("auth.CurrentUser", err)
	}
	return user, nil
}
