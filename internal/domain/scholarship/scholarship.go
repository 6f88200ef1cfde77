package scholarship

import (
	"context"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
)

const (
	FieldID              = "_id"
	FieldName            = "scholarshipName"
	FieldUniversityName  = "universityName"
	FieldDegree          = "degree"
	FieldCategory        = "scholarshipCategory"
	FieldApplicationFees = "applicationFees"
	FieldCreatedAt       = "createdAt"
)

// SearchFields are matched by a free-text search term.
var SearchFields = []string{FieldName, FieldUniversityName, FieldDegree}

type Order string

const (
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

// Filter narrows a listing. Search is a case-insensitive substring over SearchFields,
// Category an exact match on scholarshipCategory. Empty values match everything.
type Filter struct {
	Search   string
	Category string
}

type Repository interface {
	Create(ctx context.Context, doc store.Document) (*store.InsertResult, error)
	List(ctx context.Context, filter Filter) ([]store.Document, error)
	GetByID(ctx context.Context, id common.ID) (store.Document, error)
	Update(ctx context.Context, id common.ID, fields store.Document) (*store.UpdateResult, error)
	Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error)
}
