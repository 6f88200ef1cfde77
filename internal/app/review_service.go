package app

import (
	"context"
	"time"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/review"
	"scholarstream/internal/domain/store"
)

// ReviewInput carries rating and comment under their request names; they are stored
// as ratingPoint and reviewComment. Values are kept as sent.
type ReviewInput struct {
	ApplicationID     any `json:"applicationId"`
	ScholarshipID     any `json:"scholarshipId"`
	ScholarshipName   any `json:"scholarshipName"`
	UniversityName    any `json:"universityName"`
	UniversityCity    any `json:"universityCity"`
	UniversityCountry any `json:"universityCountry"`
	UserID            any `json:"userId"`
	UserName          any `json:"userName"`
	UserEmail         any `json:"userEmail"`
	UserImage         any `json:"userImage"`
	Rating            any `json:"rating"`
	Comment           any `json:"comment"`
}

type ReviewService struct {
	repo  review.Repository
	clock func() time.Time
}

func NewReviewService(repo review.Repository) *ReviewService {
	return &ReviewService{repo: repo, clock: time.Now}
}

func (s *ReviewService) Create(ctx context.Context, input ReviewInput) (*store.InsertResult, error) {
	return s.repo.Create(ctx, review.Review{
		ApplicationID:     input.ApplicationID,
		ScholarshipID:     input.ScholarshipID,
		ScholarshipName:   input.ScholarshipName,
		UniversityName:    input.UniversityName,
		UniversityCity:    input.UniversityCity,
		UniversityCountry: input.UniversityCountry,
		UserID:            input.UserID,
		UserName:          input.UserName,
		UserEmail:         input.UserEmail,
		UserImage:         input.UserImage,
		RatingPoint:       input.Rating,
		ReviewComment:     input.Comment,
		ReviewDate:        s.clock().UTC(),
	})
}

func (s *ReviewService) List(ctx context.Context) ([]review.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]review.Review, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update overwrites rating and comment with the given values, nil included.
func (s *ReviewService) Update(ctx context.Context, id common.ID, ratingPoint, reviewComment any) (*store.UpdateResult, error) {
	return s.repo.Update(ctx, id, review.Update{
		RatingPoint:   ratingPoint,
		ReviewComment: reviewComment,
		ReviewDate:    s.clock().UTC(),
	})
}

func (s *ReviewService) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
