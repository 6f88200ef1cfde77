package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/review"
	"scholarstream/internal/domain/store"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(CollectionReviews)}
}

func (r *ReviewRepository) Create(ctx context.Context, item review.Review) (*store.InsertResult, error) {
	item.ID = common.NewID()
	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create review", err)
	}
	return insertResult(item.ID), nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]review.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]review.Review, error) {
	return r.find(ctx, bson.M{review.FieldUserID: userID})
}

func (r *ReviewRepository) Update(ctx context.Context, id common.ID, update review.Update) (*store.UpdateResult, error) {
	res, err := setFields(ctx, r.coll, byID(id), bson.M{
		review.FieldRatingPoint:   update.RatingPoint,
		review.FieldReviewComment: update.ReviewComment,
		review.FieldReviewDate:    update.ReviewDate,
	})
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update review", err)
	}
	return res, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to delete review", err)
	}
	return deleteResult(res), nil
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]review.Review, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list reviews", err)
	}
	items := make([]review.Review, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode reviews", err)
	}
	return items, nil
}
