package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/domain/store"
)

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(CollectionApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*store.InsertResult, error) {
	app.ID = common.NewID()
	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return insertResult(app.ID), nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]application.Application, error) {
	return r.find(ctx, bson.M{application.FieldUserID: userID})
}

func (r *ApplicationRepository) UpdateApplicant(ctx context.Context, id common.ID, update application.ApplicantUpdate) (*store.UpdateResult, error) {
	res, err := setFields(ctx, r.coll, byID(id), bson.M{
		application.FieldUserName:  update.UserName,
		application.FieldUserEmail: update.UserEmail,
	})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return res, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	return deleteResult(res), nil
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]application.Application, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	items := make([]application.Application, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode applications", err)
	}
	return items, nil
}
