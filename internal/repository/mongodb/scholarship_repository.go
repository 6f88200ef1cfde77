package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarstream/internal/common"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/store"
)

type ScholarshipRepository struct {
	coll *mongo.Collection
}

func NewScholarshipRepository(db *mongo.Database) *ScholarshipRepository {
	return &ScholarshipRepository{coll: db.Collection(CollectionScholarships)}
}

func (r *ScholarshipRepository) Create(ctx context.Context, doc store.Document) (*store.InsertResult, error) {
	doc, id := withNewID(doc)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create scholarship", err)
	}
	return insertResult(id), nil
}

func (r *ScholarshipRepository) List(ctx context.Context, filter scholarship.Filter) ([]store.Document, error) {
	docs, err := findDocuments(ctx, r.coll, scholarshipQuery(filter))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list scholarships", err)
	}
	return docs, nil
}

func (r *ScholarshipRepository) GetByID(ctx context.Context, id common.ID) (store.Document, error) {
	doc, err := findOneDocument(ctx, r.coll, byID(id))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load scholarship", err)
	}
	return doc, nil
}

func (r *ScholarshipRepository) Update(ctx context.Context, id common.ID, fields store.Document) (*store.UpdateResult, error) {
	res, err := setFields(ctx, r.coll, byID(id), fields)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update scholarship", err)
	}
	return res, nil
}

func (r *ScholarshipRepository) Delete(ctx context.Context, id common.ID) (*store.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to delete scholarship", err)
	}
	return deleteResult(res), nil
}

func scholarshipQuery(filter scholarship.Filter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		pattern := regexp.QuoteMeta(filter.Search)
		or := make(bson.A, 0, len(scholarship.SearchFields))
		for _, field := range scholarship.SearchFields {
			or = append(or, bson.M{field: primitive.Regex{Pattern: pattern, Options: "i"}})
		}
		query["$or"] = or
	}
	if filter.Category != "" {
		query[scholarship.FieldCategory] = filter.Category
	}
	return query
}
