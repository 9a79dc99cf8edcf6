package mongodb

import (
	"context"
	"time"

	"github.com/AnshRaj112/devconnector-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostStore struct {
	col     *mongo.Collection
	timeout time.Duration
}

func (s *PostStore) Create(ctx context.Context, p *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, p)
	return translate(err)
}
