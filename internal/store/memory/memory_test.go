package memory

import (
	"context"
	"testing"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserStore_UniqueEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := &models.User{Name: "A", Email: "a@example.com"}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.False(t, u.ID.IsZero())

	err := s.Users().Create(ctx, &models.User{Name: "B", Email: "a@example.com"})
	assert.ErrorIs(t, err, store.ErrDuplicate)
	assert.Equal(t, 1, s.CountUsersByEmail("a@example.com"))

	got, err := s.Users().GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProfileStore_UpsertAndLists(t *testing.T) {
	s := New()
	ctx := context.Background()
	userID := primitive.NewObjectID()
	status := "Developer"

	p, err := s.Profiles().Upsert(ctx, userID, &models.ProfileUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.NotNil(t, p.Experience)

	again, err := s.Profiles().Upsert(ctx, userID, &models.ProfileUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
	assert.Equal(t, 1, s.CountProfiles())

	a := models.Hobby{ID: primitive.NewObjectID(), Title: "A"}
	b := models.Hobby{ID: primitive.NewObjectID(), Title: "B"}
	_, err = s.Profiles().PushHobby(ctx, userID, a)
	require.NoError(t, err)
	p, err = s.Profiles().PushHobby(ctx, userID, b)
	require.NoError(t, err)
	assert.Equal(t, []models.Hobby{b, a}, p.Hobbies)

	p, err = s.Profiles().PullHobby(ctx, userID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Hobby{b}, p.Hobbies)

	_, err = s.Profiles().PushHobby(ctx, primitive.NewObjectID(), a)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Profiles().DeleteByUser(ctx, userID))
	require.NoError(t, s.Profiles().DeleteByUser(ctx, userID))
	assert.Equal(t, 0, s.CountProfiles())
}

func TestProfileStore_ReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	p, err := s.Profiles().Upsert(ctx, userID, &models.ProfileUpdate{Skills: []string{"go"}})
	require.NoError(t, err)
	p.Skills[0] = "mutated"

	stored, err := s.Profiles().GetByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, stored.Skills)
}
