package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a table reservation. Date and Time are kept as the strings the
// customer picked in the form.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Guests    int                `bson:"guests" json:"guests"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewBooking(name, email, phone, date, timeOfDay string, guests int) *Booking {
	if guests <= 0 {
		guests = 1
	}
	return &Booking{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Date:      date,
		Time:      timeOfDay,
		Guests:    guests,
		CreatedAt: time.Now(),
	}
}
