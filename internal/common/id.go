package common

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ID = primitive.ObjectID

func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID accepts the 24 character hex form used in URLs and JSON bodies.
func ParseID(value string) (ID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, NewValidationError("invalid id", map[string]string{"id": "must be a 24 character hex string"})
	}
	return id, nil
}
