package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
}

func NewMenuItem(name string, price float64, category, image, description string) *MenuItem {
	return &MenuItem{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Price:       price,
		Category:    category,
		Image:       image,
		Description: description,
	}
}

// MenuUpdate carries the fields of a partial menu edit. Nil pointers and an
// empty Image leave the stored value untouched.
type MenuUpdate struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Image       string
}
