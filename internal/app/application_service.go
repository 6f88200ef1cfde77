package app

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/domain/store"
)

// ApplicationInput is the client supplied part of a new application. Values are kept as
// sent; only the three key fields are checked, and only for presence.
type ApplicationInput struct {
	ScholarshipID       any `json:"scholarshipId" validate:"present"`
	ScholarshipName     any `json:"scholarshipName"`
	UserID              any `json:"userId" validate:"present"`
	UserName            any `json:"userName"`
	UserEmail           any `json:"userEmail" validate:"present"`
	UniversityName      any `json:"universityName"`
	UniversityCity      any `json:"universityCity"`
	UniversityCountry   any `json:"universityCountry"`
	ScholarshipCategory any `json:"scholarshipCategory"`
	Degree              any `json:"degree"`
	ApplicationFees     any `json:"applicationFees"`
	ServiceCharge       any `json:"serviceCharge"`
	PaymentStatus       any `json:"paymentStatus"`
}

type ApplicationService struct {
	repo     application.Repository
	validate *validator.Validate
	clock    func() time.Time
}

func NewApplicationService(repo application.Repository, validate *validator.Validate) *ApplicationService {
	return &ApplicationService{repo: repo, validate: validate, clock: time.Now}
}

func (s *ApplicationService) Create(ctx context.Context, input ApplicationInput) (*store.InsertResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, common.NewValidationError("Invalid application data", validationFields(err))
	}
	paymentStatus := input.PaymentStatus
	if !isPresent(paymentStatus) {
		paymentStatus = application.PaymentUnpaid
	}
	return s.repo.Create(ctx, application.Application{
		ScholarshipID:       input.ScholarshipID,
		ScholarshipName:     input.ScholarshipName,
		UserID:              input.UserID,
		UserName:            input.UserName,
		UserEmail:           input.UserEmail,
		UniversityName:      input.UniversityName,
		UniversityCity:      input.UniversityCity,
		UniversityCountry:   input.UniversityCountry,
		ScholarshipCategory: input.ScholarshipCategory,
		Degree:              input.Degree,
		ApplicationFees:     input.ApplicationFees,
		ServiceCharge:       input.ServiceCharge,
		ApplicationStatus:   application.StatusPending,
		PaymentStatus:       paymentStatus,
		ApplicationDate:     s.clock().UTC(),
		Feedback:            "",
	})
}

func (s *ApplicationService) List(ctx context.Context) ([]application.Application, error) {
	return s.repo.List(ctx)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID string) ([]application.Application, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ApplicationService) UpdateApplicant(ctx context.Context, id common.ID, update application.ApplicantUpdate) (*store.UpdateResult, error) {
	return s.repo.UpdateApplicant(ctx, id, update)
}

func (s *ApplicationService) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
