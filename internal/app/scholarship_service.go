package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/store"
)

type ScholarshipService struct {
	repo  scholarship.Repository
	clock func() time.Time
}

func NewScholarshipService(repo scholarship.Repository) *ScholarshipService {
	return &ScholarshipService{repo: repo, clock: time.Now}
}

func (s *ScholarshipService) Create(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	fields := withoutID(doc)
	fields[scholarship.FieldCreatedAt] = s.clock().UTC()
	return s.repo.Create(ctx, fields)
}

// List applies filter in the store and then orders by application fee when order is
// ascending or descending. Any other order keeps the store's order.
func (s *ScholarshipService) List(ctx context.Context, filter scholarship.Filter, order scholarship.Order) ([]store.Document, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	SortByApplicationFees(items, order)
	return items, nil
}

func (s *ScholarshipService) Get(ctx context.Context, id common.ID) (store.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScholarshipService) Update(ctx context.Context, id common.ID, doc store.Document) (*store.UpdateResult, error) {
	fields := withoutID(doc)
	result, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, common.NewError(common.CodeNotFound, "Scholarship not found", nil)
	}
	return result, nil
}

func (s *ScholarshipService) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}

// SortByApplicationFees stably sorts items in place. Fees that do not parse as numbers
// are placed after every numeric fee regardless of direction.
func SortByApplicationFees(items []store.Document, order scholarship.Order) {
	if order != scholarship.OrderAscending && order != scholarship.OrderDescending {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, aok := decimalValue(items[i][scholarship.FieldApplicationFees])
		b, bok := decimalValue(items[j][scholarship.FieldApplicationFees])
		switch {
		case !aok || !bok:
			return aok && !bok
		case order == scholarship.OrderAscending:
			return a.LessThan(b)
		default:
			return a.GreaterThan(b)
		}
	})
}

// decimalValue parses JSON and BSON numbers and numeric strings.
func decimalValue(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		return parsed, err == nil
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case decimal.Decimal:
		return v, true
	case primitive.Decimal128:
		parsed, err := decimal.NewFromString(v.String())
		return parsed, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func withoutID(doc store.Document) store.Document {
	out := make(store.Document, len(doc)+1)
	for key, value := range doc {
		if key == scholarship.FieldID {
			continue
		}
		out[key] = value
	}
	return out
}
