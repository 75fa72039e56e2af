package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"

	DefaultPaymentMethod = "COD"
)

type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is a checkout record. TotalAmount is whatever the client submitted;
// it is not recomputed from Items.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User          UserSnapshot       `bson:"user" json:"user"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod string             `bson:"paymentMethod" json:"paymentMethod"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

func NewOrder(user UserSnapshot, items []OrderItem, totalAmount float64, paymentMethod string) *Order {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	if items == nil {
		items = []OrderItem{}
	}
	return &Order{
		ID:            primitive.NewObjectID(),
		User:          user,
		Items:         items,
		TotalAmount:   totalAmount,
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		Date:          time.Now(),
	}
}
