// Package store holds the document and write-result shapes shared by every collection.
package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"scholarstream/internal/common"
)

// Document is a schema-free record as stored in a collection.
type Document = bson.M

type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   common.ID `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool       `json:"acknowledged"`
	MatchedCount  int64      `json:"matchedCount"`
	ModifiedCount int64      `json:"modifiedCount"`
	UpsertedCount int64      `json:"upsertedCount"`
	UpsertedID    *common.ID `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
