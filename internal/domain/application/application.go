package application

import (
	"context"
	"time"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
)

const (
	StatusPending = "pending"
	PaymentUnpaid = "UNPAID"
)

const (
	FieldUserID    = "userId"
	FieldUserName  = "userName"
	FieldUserEmail = "userEmail"
)

// Application keeps client supplied values as they were sent; only the status fields,
// the date and the feedback are set by the server.
type Application struct {
	ID                  common.ID `bson:"_id,omitempty" json:"_id"`
	ScholarshipID       any       `bson:"scholarshipId" json:"scholarshipId"`
	ScholarshipName     any       `bson:"scholarshipName" json:"scholarshipName"`
	UserID              any       `bson:"userId" json:"userId"`
	UserName            any       `bson:"userName" json:"userName"`
	UserEmail           any       `bson:"userEmail" json:"userEmail"`
	UniversityName      any       `bson:"universityName" json:"universityName"`
	UniversityCity      any       `bson:"universityCity" json:"universityCity"`
	UniversityCountry   any       `bson:"universityCountry" json:"universityCountry"`
	ScholarshipCategory any       `bson:"scholarshipCategory" json:"scholarshipCategory"`
	Degree              any       `bson:"degree" json:"degree"`
	ApplicationFees     any       `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       any       `bson:"serviceCharge" json:"serviceCharge"`
	ApplicationStatus   string    `bson:"applicationStatus" json:"applicationStatus"`
	PaymentStatus       any       `bson:"paymentStatus" json:"paymentStatus"`
	ApplicationDate     time.Time `bson:"applicationDate" json:"applicationDate"`
	Feedback            string    `bson:"feedback" json:"feedback"`
}

// ApplicantUpdate overwrites both fields; a nil value is stored as null.
type ApplicantUpdate struct {
	UserName  any
	UserEmail any
}

type Repository interface {
	Create(ctx context.Context, app Application) (*store.InsertResult, error)
	List(ctx context.Context) ([]Application, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)
	UpdateApplicant(ctx context.Context, id common.ID, update ApplicantUpdate) (*store.UpdateResult, error)
	Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error)
}
