package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/domain/user"
)

const (
	CollectionUsers        = "Users"
	CollectionScholarships = "Scholarships"
	CollectionApplications = "Applications"
	CollectionReviews      = "Reviews"
)

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: user.FieldEmail, Value: 1}},
		Options: options.Index().
			SetName("users_email_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{user.FieldEmail: bson.M{"$type": "string"}}),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func byID(id common.ID) bson.M {
	return bson.M{"_id": id}
}

// withNewID replaces any client supplied _id with a fresh ObjectID.
func withNewID(doc store.Document) (store.Document, common.ID) {
	out := make(store.Document, len(doc)+1)
	for key, value := range doc {
		out[key] = value
	}
	id := common.NewID()
	out["_id"] = id
	return out, id
}

func insertResult(id common.ID) *store.InsertResult {
	return &store.InsertResult{Acknowledged: true, InsertedID: id}
}

// Unacknowledged writes surface as mongo.ErrUnacknowledgedWrite, so every result that
// reaches these helpers was acknowledged.
func updateResult(res *mongo.UpdateResult) *store.UpdateResult {
	out := &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out
}

func deleteResult(res *mongo.DeleteResult) *store.DeleteResult {
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// setFields runs $set on the first document matching filter. An empty set writes nothing
// but still reports whether a document matched.
func setFields(ctx context.Context, coll *mongo.Collection, filter bson.M, fields bson.M) (*store.UpdateResult, error) {
	if len(fields) == 0 {
		matched, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
		if err != nil {
			return nil, err
		}
		return &store.UpdateResult{Acknowledged: true, MatchedCount: matched}, nil
	}
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func findDocuments(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]store.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := make([]store.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findOneDocument returns nil without error when nothing matches.
func findOneDocument(ctx context.Context, coll *mongo.Collection, filter bson.M) (store.Document, error) {
	var doc store.Document
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}
