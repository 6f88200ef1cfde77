package app

import (
	"context"

	"scholarstream/internal/domain/store"
	"scholarstream/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

// Create inserts a profile. A taken email surfaces as a common.CodeConflict error and
// leaves the stored profile untouched.
func (s *UserService) Create(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	return s.users.Create(ctx, doc)
}

func (s *UserService) List(ctx context.Context) ([]store.Document, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, email string) (store.Document, error) {
	return s.users.GetByEmail(ctx, email)
}

// SetRole writes role as given; a nil role is stored as null.
func (s *UserService) SetRole(ctx context.Context, email string, role any) (*store.UpdateResult, error) {
	return s.users.SetRole(ctx, email, role)
}

func (s *UserService) Delete(ctx context.Context, email string) (*store.DeleteResult, error) {
	return s.users.DeleteByEmail(ctx, email)
}
