package memory

import (
	"context"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/domain/user"
)

type UserRepository struct {
	users *collection[store.Document]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection[store.Document]()}
}

func (r *UserRepository) Create(_ context.Context, doc store.Document) (*store.InsertResult, error) {
	id := common.NewID()
	stored := cloneDocument(doc)
	if stored == nil {
		stored = store.Document{}
	}
	stored["_id"] = id
	email, hasEmail := stored[user.FieldEmail].(string)
	conflicts := func(existing store.Document) bool {
		return hasEmail && existing[user.FieldEmail] == email
	}
	if !r.users.insert(id, stored, conflicts) {
		return nil, common.NewError(common.CodeConflict, "user already exists", nil)
	}
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *UserRepository) List(_ context.Context) ([]store.Document, error) {
	return cloneDocuments(r.users.find(nil)), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (store.Document, error) {
	_, doc, ok := r.users.first(emailIs(email))
	if !ok {
		return nil, nil
	}
	return cloneDocument(doc), nil
}

func (r *UserRepository) SetRole(_ context.Context, email string, role any) (*store.UpdateResult, error) {
	return r.users.updateFirst(emailIs(email), func(doc store.Document) store.Document {
		updated := cloneDocument(doc)
		updated[user.FieldRole] = role
		return updated
	}), nil
}

func (r *UserRepository) DeleteByEmail(_ context.Context, email string) (*store.DeleteResult, error) {
	return r.users.deleteFirst(emailIs(email)), nil
}

func (r *UserRepository) Count() int {
	return r.users.count()
}

func emailIs(email string) func(common.ID, store.Document) bool {
	return func(_ common.ID, doc store.Document) bool {
		value, ok := doc[user.FieldEmail].(string)
		return ok && value == email
	}
}
