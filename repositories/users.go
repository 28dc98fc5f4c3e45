package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ramo772/blog-management-api/models"
)

type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{NewRepository[models.User](db.Collection("users"))}
}

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.FindOne(ctx, bson.M{"email": email})
}

// Create stores a new user document. The unique email index makes concurrent
// registrations with the same address fail with a duplicate key error.
func (r *UserRepository) Create(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return r.Insert(ctx, u)
}
