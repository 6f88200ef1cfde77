package memory

import (
	"context"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/domain/store"
)

type ApplicationRepository struct {
	applications *collection[application.Application]
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{applications: newCollection[application.Application]()}
}

func (r *ApplicationRepository) Create(_ context.Context, app application.Application) (*store.InsertResult, error) {
	app.ID = common.NewID()
	r.applications.insert(app.ID, app, nil)
	return &store.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

func (r *ApplicationRepository) List(_ context.Context) ([]application.Application, error) {
	return r.applications.find(nil), nil
}

func (r *ApplicationRepository) ListByUser(_ context.Context, userID string) ([]application.Application, error) {
	return r.applications.find(func(_ common.ID, app application.Application) bool {
		return app.UserID == any(userID)
	}), nil
}

func (r *ApplicationRepository) UpdateApplicant(_ context.Context, id common.ID, update application.ApplicantUpdate) (*store.UpdateResult, error) {
	return r.applications.updateFirst(hasID[application.Application](id), func(app application.Application) application.Application {
		app.UserName = update.UserName
		app.UserEmail = update.UserEmail
		return app
	}), nil
}

func (r *ApplicationRepository) Delete(_ context.Context, id common.ID) (*store.DeleteResult, error) {
	return r.applications.deleteFirst(hasID[application.Application](id)), nil
}

func (r *ApplicationRepository) Count() int {
	return r.applications.count()
}
