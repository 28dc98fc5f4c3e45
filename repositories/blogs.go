package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ramo772/blog-management-api/models"
)

type BlogRepository struct {
	*Repository[models.Blog]
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{NewRepository[models.Blog](db.Collection("blogs"))}
}

// ListBlogsOptions filters and paginates the blog listing. SearchQuery and
// Category combine with AND when both are set.
type ListBlogsOptions struct {
	SearchQuery string
	Category    string
	Page        int
	Limit       int
}

// buildListFilter composes the Mongo filter for a listing request.
// The search query matches title OR content case-insensitively as a
// substring; the category must match one of the post's tags exactly,
// ignoring case.
func buildListFilter(opt ListBlogsOptions) bson.M {
	filter := bson.M{}
	if opt.SearchQuery != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(opt.SearchQuery), Options: "i"}
		filter["$or"] = []bson.M{
			{"title": re},
			{"content": re},
		}
	}
	if opt.Category != "" {
		filter["category"] = primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(opt.Category) + "$",
			Options: "i",
		}
	}
	return filter
}

// List returns one page of blogs with their authors expanded, newest first,
// plus the total count matching the filter.
func (r *BlogRepository) List(ctx context.Context, opt ListBlogsOptions) ([]models.BlogWithAuthor, int64, error) {
	return Paginate[models.BlogWithAuthor](ctx, r.Collection(), buildListFilter(opt), PageOptions{
		Page:   opt.Page,
		Limit:  opt.Limit,
		Expand: &Expand{From: "users", LocalField: "user_id", As: "author"},
	})
}

// FindWithAuthor returns a blog with its author expanded, or nil when absent.
func (r *BlogRepository) FindWithAuthor(ctx context.Context, id primitive.ObjectID) (*models.BlogWithAuthor, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"_id": id}},
		{"$limit": 1},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "author",
		}},
		{"$unwind": bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}},
	}

	cur, err := r.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return nil, cur.Err()
	}
	var b models.BlogWithAuthor
	if err := cur.Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create stores a new blog document.
func (r *BlogRepository) Create(ctx context.Context, b *models.Blog) (primitive.ObjectID, error) {
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	return r.Insert(ctx, b)
}

// UpdateOwned applies a partial $set to the blog only if it is owned by
// ownerID. The ownership condition is part of the write filter, so a
// non-owner can never race past the check. Reports whether a document
// matched.
func (r *BlogRepository) UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, fields bson.M) (bool, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.Collection().UpdateOne(ctx,
		bson.M{"_id": id, "user_id": ownerID},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteOwned removes the blog only if it is owned by ownerID. Reports
// whether a document was deleted.
func (r *BlogRepository) DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error) {
	res, err := r.Collection().DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
