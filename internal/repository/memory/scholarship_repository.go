package memory

import (
	"context"
	"strings"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/store"
)

type ScholarshipRepository struct {
	scholarships *collection[store.Document]
}

func NewScholarshipRepository() *ScholarshipRepository {
	return &ScholarshipRepository{scholarships: newCollection[store.Document]()}
}

func (r *ScholarshipRepository) Create(_ context.Context, doc store.Document) (*store.InsertResult, error) {
	id := common.NewID()
	stored := cloneDocument(doc)
	if stored == nil {
		stored = store.Document{}
	}
	stored[scholarship.FieldID] = id
	r.scholarships.insert(id, stored, nil)
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *ScholarshipRepository) List(_ context.Context, filter scholarship.Filter) ([]store.Document, error) {
	return cloneDocuments(r.scholarships.find(matchesFilter(filter))), nil
}

func (r *ScholarshipRepository) GetByID(_ context.Context, id common.ID) (store.Document, error) {
	doc, ok := r.scholarships.get(id)
	if !ok {
		return nil, nil
	}
	return cloneDocument(doc), nil
}

func (r *ScholarshipRepository) Update(_ context.Context, id common.ID, fields store.Document) (*store.UpdateResult, error) {
	return r.scholarships.updateFirst(hasID[store.Document](id), func(doc store.Document) store.Document {
		updated := cloneDocument(doc)
		for key, value := range fields {
			updated[key] = value
		}
		return updated
	}), nil
}

func (r *ScholarshipRepository) Delete(_ context.Context, id common.ID) (*store.DeleteResult, error) {
	return r.scholarships.deleteFirst(hasID[store.Document](id)), nil
}

func (r *ScholarshipRepository) Count() int {
	return r.scholarships.count()
}

func matchesFilter(filter scholarship.Filter) func(common.ID, store.Document) bool {
	term := strings.ToLower(filter.Search)
	return func(_ common.ID, doc store.Document) bool {
		if filter.Category != "" && doc[scholarship.FieldCategory] != filter.Category {
			return false
		}
		if term == "" {
			return true
		}
		for _, field := range scholarship.SearchFields {
			if value, ok := doc[field].(string); ok && strings.Contains(strings.ToLower(value), term) {
				return true
			}
		}
		return false
	}
}
