package user

import (
	"context"

	"scholarstream/internal/domain/store"
)

const (
	FieldEmail = "email"
	FieldRole  = "role"
)

// Repository stores free-form user profiles keyed by a unique email.
// Create returns a common.CodeConflict error when the email is already taken. Profiles
// without a string email are not deduplicated. SetRole stores role as given, nil as null.
type Repository interface {
	Create(ctx context.Context, doc store.Document) (*store.InsertResult, error)
	List(ctx context.Context) ([]store.Document, error)
	GetByEmail(ctx context.Context, email string) (store.Document, error)
	SetRole(ctx context.Context, email string, role any) (*store.UpdateResult, error)
	DeleteByEmail(ctx context.Context, email string) (*store.DeleteResult, error)
}
