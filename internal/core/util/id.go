package util

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a hex identifier taken from a URL. ok is false when the
// value is not a valid ObjectID, which callers treat as "no such document".
func ParseID(hex string) (id primitive.ObjectID, ok bool) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
