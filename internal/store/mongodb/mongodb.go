// Package mongodb implements the store contracts on the official MongoDB driver.
package mongodb

import (
	"errors"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection    = "users"
	profilesCollection = "profiles"
	postsCollection    = "posts"

	defaultOpTimeout = 5 * time.Second
)

var (
	_ store.UserStore    = (*UserStore)(nil)
	_ store.ProfileStore = (*ProfileStore)(nil)
	_ store.PostStore    = (*PostStore)(nil)
)

// Stores bundles the collection-backed stores sharing one database handle.
type Stores struct {
	Users    *UserStore
	Profiles *ProfileStore
	Posts    *PostStore
}

func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:    &UserStore{col: db.Collection(usersCollection), timeout: defaultOpTimeout},
		Profiles: &ProfileStore{col: db.Collection(profilesCollection), timeout: defaultOpTimeout},
		Posts:    &PostStore{col: db.Collection(postsCollection), timeout: defaultOpTimeout},
	}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}
