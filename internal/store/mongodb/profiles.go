package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"github.com/AnshRaj112/devconnector-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileStore struct {
	col     *mongo.Collection
	timeout time.Duration
}

func (s *ProfileStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p models.Profile
	if err := s.col.FindOne(ctx, bson.M{"user": userID}).Decode(&p); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *ProfileStore) List(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find profiles: %w", err)
	}
	defer cur.Close(ctx)

	profiles := []models.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	return profiles, nil
}

// Upsert runs as a single FindOneAndUpdate so concurrent calls for the same
// user converge on one document (backed by the unique index on "user").
// A duplicate-key failure from a concurrent insert is retried once as an update.
func (s *ProfileStore) Upsert(ctx context.Context, userID primitive.ObjectID, update *models.ProfileUpdate) (*models.Profile, error) {
	set := updateFields(update)
	doc := bson.M{
		"$setOnInsert": bson.M{
			"user":       userID,
			"experience": bson.A{},
			"hobbies":    bson.A{},
			"date":       time.Now().UTC(),
		},
	}
	if len(set) > 0 {
		doc["$set"] = set
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	p, err := s.findOneAndUpdate(ctx, userID, doc, opts)
	if errors.Is(err, store.ErrDuplicate) {
		// Lost an insert race on uniq_user; the winner's document now matches.
		return s.findOneAndUpdate(ctx, userID, doc, opts)
	}
	return p, err
}

func (s *ProfileStore) PushExperience(ctx context.Context, userID primitive.ObjectID, e models.Experience) (*models.Profile, error) {
	return s.pushHead(ctx, userID, "experience", e)
}

func (s *ProfileStore) PushHobby(ctx context.Context, userID primitive.ObjectID, h models.Hobby) (*models.Profile, error) {
	return s.pushHead(ctx, userID, "hobbies", h)
}

func (s *ProfileStore) PullExperience(ctx context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error) {
	return s.pull(ctx, userID, "experience", entryID)
}

func (s *ProfileStore) PullHobby(ctx context.Context, userID, entryID primitive.ObjectID) (*models.Profile, error) {
	return s.pull(ctx, userID, "hobbies", entryID)
}

func (s *ProfileStore) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.col.DeleteOne(ctx, bson.M{"user": userID})
	return translate(err)
}

func (s *ProfileStore) pushHead(ctx context.Context, userID primitive.ObjectID, field string, entry interface{}) (*models.Profile, error) {
	doc := bson.M{
		"$push": bson.M{
			field: bson.M{"$each": bson.A{entry}, "$position": 0},
		},
	}
	return s.findOneAndUpdate(ctx, userID, doc, options.FindOneAndUpdate().SetReturnDocument(options.After))
}

func (s *ProfileStore) pull(ctx context.Context, userID primitive.ObjectID, field string, entryID primitive.ObjectID) (*models.Profile, error) {
	doc := bson.M{
		"$pull": bson.M{
			field: bson.M{"_id": entryID},
		},
	}
	return s.findOneAndUpdate(ctx, userID, doc, options.FindOneAndUpdate().SetReturnDocument(options.After))
}

func (s *ProfileStore) findOneAndUpdate(ctx context.Context, userID primitive.ObjectID, doc bson.M, opts *options.FindOneAndUpdateOptions) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p models.Profile
	if err := s.col.FindOneAndUpdate(ctx, bson.M{"user": userID}, doc, opts).Decode(&p); err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// updateFields flattens the supplied fields of u into a $set document.
// Social links use dotted paths so siblings that were not supplied survive.
func updateFields(u *models.ProfileUpdate) bson.M {
	set := bson.M{}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("company", u.Company)
	put("website", u.Website)
	put("location", u.Location)
	put("bio", u.Bio)
	put("status", u.Status)
	if u.Skills != nil {
		set["skills"] = u.Skills
	}
	put("social.youtube", u.Social.YouTube)
	put("social.twitter", u.Social.Twitter)
	put("social.facebook", u.Social.Facebook)
	put("social.linkedin", u.Social.LinkedIn)
	put("social.instagram", u.Social.Instagram)
	return set
}
