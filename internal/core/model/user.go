package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, or plaintext for records created before hashing
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  passwordHash,
		Role:      RoleUser,
		CreatedAt: time.Now(),
	}
}

// UserSnapshot is the copy of a user's identity stored inside an Order at
// checkout. It is never synchronized with the users collection.
type UserSnapshot struct {
	ID    string `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}
