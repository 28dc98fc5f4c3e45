package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is a generic persistence gateway over a single collection.
// Entity repositories embed it and add their domain queries on top.
//
// Lookups that match nothing return (nil, nil); callers decide what a
// missing document means for them.
type Repository[T any] struct {
	col *mongo.Collection
}

func NewRepository[T any](col *mongo.Collection) *Repository[T] {
	return &Repository[T]{col: col}
}

// Collection exposes the underlying collection for entity-specific queries.
func (r *Repository[T]) Collection() *mongo.Collection { return r.col }

// FindByID returns the document with the given id, or nil when absent.
func (r *Repository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

// FindOne returns the first document matching the filter, or nil when absent.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Find returns all documents matching the filter.
func (r *Repository[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []T
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Insert stores a new document and returns its generated id.
func (r *Repository[T]) Insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateFields applies a partial $set to the document with the given id and
// reports whether a document matched.
func (r *Repository[T]) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteByID removes the document with the given id and reports whether one
// was deleted.
func (r *Repository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Expand describes a foreign-key relation to inline into paginated results
// via $lookup. ForeignField is always _id.
type Expand struct {
	From       string
	LocalField string
	As         string
}

// PageOptions controls pagination, ordering, and relation expansion.
type PageOptions struct {
	Page  int
	Limit int
	Sort  bson.D
	// Expand, when set, inlines the referenced document under the As field.
	Expand *Expand
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

func (o *PageOptions) normalize() {
	if o.Page <= 0 {
		o.Page = defaultPage
	}
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if len(o.Sort) == 0 {
		o.Sort = bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}
	}
}

// Paginate runs a filtered, sorted, skip/limit aggregation over col and
// returns one page of results plus the total count matching the filter.
func Paginate[T any](ctx context.Context, col *mongo.Collection, filter bson.M, opt PageOptions) ([]T, int64, error) {
	opt.normalize()

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	pipeline := []bson.M{
		{"$match": filter},
		{"$sort": opt.Sort},
		{"$skip": int64((opt.Page - 1) * opt.Limit)},
		{"$limit": int64(opt.Limit)},
	}
	if opt.Expand != nil {
		pipeline = append(pipeline,
			bson.M{"$lookup": bson.M{
				"from":         opt.Expand.From,
				"localField":   opt.Expand.LocalField,
				"foreignField": "_id",
				"as":           opt.Expand.As,
			}},
			bson.M{"$unwind": bson.M{
				"path":                       "$" + opt.Expand.As,
				"preserveNullAndEmptyArrays": true,
			}},
		)
	}

	cur, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []T
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
