package memory

import (
	"context"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/review"
	"scholarstream/internal/domain/store"
)

type ReviewRepository struct {
	reviews *collection[review.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: newCollection[review.Review]()}
}

func (r *ReviewRepository) Create(_ context.Context, item review.Review) (*store.InsertResult, error) {
	item.ID = common.NewID()
	r.reviews.insert(item.ID, item, nil)
	return &store.InsertResult{Acknowledged: true, InsertedID: item.ID}, nil
}

func (r *ReviewRepository) List(_ context.Context) ([]review.Review, error) {
	return r.reviews.find(nil), nil
}

func (r *ReviewRepository) ListByUser(_ context.Context, userID string) ([]review.Review, error) {
	return r.reviews.find(func(_ common.ID, item review.Review) bool {
		return item.UserID == any(userID)
	}), nil
}

func (r *ReviewRepository) Update(_ context.Context, id common.ID, update review.Update) (*store.UpdateResult, error) {
	return r.reviews.updateFirst(hasID[review.Review](id), func(item review.Review) review.Review {
		item.RatingPoint = update.RatingPoint
		item.ReviewComment = update.ReviewComment
		item.ReviewDate = update.ReviewDate
		return item
	}), nil
}

func (r *ReviewRepository) Delete(_ context.Context, id common.ID) (*store.DeleteResult, error) {
	return r.reviews.deleteFirst(hasID[review.Review](id)), nil
}

func (r *ReviewRepository) Count() int {
	return r.reviews.count()
}
