package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user" json:"user"`
	Text   string             `bson:"text" json:"text"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Avatar string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Date   time.Time          `bson:"date" json:"date"`
}
