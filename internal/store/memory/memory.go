// Package memory provides in-process implementations of the store contracts.
// Data is lost on restart; intended for tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds users, profiles and posts behind one lock, which also makes
// profile upserts atomic per user.
type Store struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]models.User
	profiles map[primitive.ObjectID]models.Profile // keyed by owning user
	posts    map[primitive.ObjectID]models.Post
}

func New() *Store {
	return &Store{
		users:    make(map[primitive.ObjectID]models.User),
		profiles: make(map[primitive.ObjectID]models.Profile),
		posts:    make(map[primitive.ObjectID]models.Post),
	}
}

// Users, Profiles and Posts expose the store through each contract.
func (s *Store) Users() store.UserStore       { return (*userStore)(s) }
func (s *Store) Profiles() store.ProfileStore { return (*profileStore)(s) }
func (s *Store) Posts() store.PostStore       { return (*postStore)(s) }

// CountUsersByEmail is a test helper.
func (s *Store) CountUsersByEmail(email string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if u.Email == email {
			n++
		}
	}
	return n
}

// CountProfiles is a test helper.
func (s *Store) CountProfiles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

type userStore Store

func (s *userStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *userStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (s *userStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *userStore) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *userStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

type profileStore Store

func (s *profileStore) GetByUser(_ context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneProfile(p), nil
}

func (s *profileStore) List(_ context.Context) ([]models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, *cloneProfile(p))
	}
	// Map order is random; keep creation order like a collection scan.
	sortByID(out)
	return out, nil
}

func (s *profileStore) Upsert(_ context.Context, userID primitive.ObjectID, update *models.ProfileUpdate) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		p = models.Profile{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			Experience: []models.Experience{},
			Hobbies:    []models.Hobby{},
			Date:       time.Now().UTC(),
		}
	}
	update.Apply(&p)
	s.profiles[userID] = p
	return cloneProfile(p), nil
}

func (s *profileStore) PushExperience(_ context.Context, userID primitive.ObjectID, e models.Experience) (*models.Profile, error) {
	return s.mutate(userID, func(p *models.Profile) {
		p.Experience = append([]models.Experience{e}, p.Experience...)
	})
}

func (s *profileStore) PushHobby(_ context.Context, userID primitive.ObjectID, h models.Hobby) (*models.Profile, error) {
	return s.mutate(userID, func(p *models.Profile) {
		p.Hobbies = append([]models.Hobby{h}, p.Hobbies...)
	})
}

func (s *profileStore) PullExperience(_ context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error) {
	return s.mutate(userID, func(p *models.Profile) {
		kept := make([]models.Experience, 0, len(p.Experience))
		for _, e := range p.Experience {
			if e.ID != entryID {
				kept = append(kept, e)
			}
		}
		p.Experience = kept
	})
}

func (s *profileStore) PullHobby(_ context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error) {
	return s.mutate(userID, func(p *models.Profile) {
		kept := make([]models.Hobby, 0, len(p.Hobbies))
		for _, h := range p.Hobbies {
			if h.ID != entryID {
				kept = append(kept, h)
			}
		}
		p.Hobbies = kept
	})
}

func (s *profileStore) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

func (s *profileStore) mutate(userID primitive.ObjectID, fn func(*models.Profile)) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	fn(&p)
	s.profiles[userID] = p
	return cloneProfile(p), nil
}

type postStore Store

func (s *postStore) Create(_ context.Context, p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.posts[p.ID] = *p
	return nil
}

func cloneProfile(p models.Profile) *models.Profile {
	p.Skills = append([]string(nil), p.Skills...)
	p.Experience = append([]models.Experience{}, p.Experience...)
	p.Hobbies = append([]models.Hobby{}, p.Hobbies...)
	if p.Social != nil {
		social := *p.Social
		p.Social = &social
	}
	return &p
}

func sortByID(profiles []models.Profile) {
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID.Hex() < profiles[j].ID.Hex()
	})
}
