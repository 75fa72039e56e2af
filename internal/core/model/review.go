package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User      string             `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"` // author name at the time of writing
	Comment   string             `bson:"comment" json:"comment"`
	Rating    int                `bson:"rating" json:"rating"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewReview(author UserSnapshot, comment string, rating int) *Review {
	return &Review{
		ID:        primitive.NewObjectID(),
		User:      author.ID,
		Name:      author.Name,
		Comment:   comment,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
}
