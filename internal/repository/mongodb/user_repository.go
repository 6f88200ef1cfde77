package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/domain/user"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(CollectionUsers)}
}

func (r *UserRepository) Create(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	doc, id := withNewID(doc)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.NewError(common.CodeConflict, "user already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return insertResult(id), nil
}

func (r *UserRepository) List(ctx context.Context) ([]store.Document, error) {
	docs, err := findDocuments(ctx, r.coll, bson.M{})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list users", err)
	}
	return docs, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (store.Document, error) {
	doc, err := findOneDocument(ctx, r.coll, bson.M{user.FieldEmail: email})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return doc, nil
}

func (r *UserRepository) SetRole(ctx context.Context, email string, role any) (*store.UpdateResult, error) {
	res, err := setFields(ctx, r.coll, bson.M{user.FieldEmail: email}, bson.M{user.FieldRole: role})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update user role", err)
	}
	return res, nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{user.FieldEmail: email})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to delete user", err)
	}
	return deleteResult(res), nil
}
