package review

import (
	"context"
	"time"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
)

const (
	FieldUserID        = "userId"
	FieldRatingPoint   = "ratingPoint"
	FieldReviewComment = "reviewComment"
	FieldReviewDate    = "reviewDate"
)

type Review struct {
	ID                common.ID `bson:"_id,omitempty" json:"_id"`
	ApplicationID     any       `bson:"applicationId" json:"applicationId"`
	ScholarshipID     any       `bson:"scholarshipId" json:"scholarshipId"`
	ScholarshipName   any       `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName    any       `bson:"universityName" json:"universityName"`
	UniversityCity    any       `bson:"universityCity" json:"universityCity"`
	UniversityCountry any       `bson:"universityCountry" json:"universityCountry"`
	UserID            any       `bson:"userId" json:"userId"`
	UserName          any       `bson:"userName" json:"userName"`
	UserEmail         any       `bson:"userEmail" json:"userEmail"`
	UserImage         any       `bson:"userImage" json:"userImage"`
	RatingPoint       any       `bson:"ratingPoint" json:"ratingPoint"`
	ReviewComment     any       `bson:"reviewComment" json:"reviewComment"`
	ReviewDate        time.Time `bson:"reviewDate" json:"reviewDate"`
}

// Update overwrites rating and comment as given, nil included, and refreshes ReviewDate.
type Update struct {
	RatingPoint   any
	ReviewComment any
	ReviewDate    time.Time
}

type Repository interface {
	Create(ctx context.Context, r Review) (*store.InsertResult, error)
	List(ctx context.Context) ([]Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	Update(ctx context.Context, id common.ID, update Update) (*store.UpdateResult, error)
	Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error)
}
