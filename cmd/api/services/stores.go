package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ramo772/blog-management-api/models"
	"github.com/ramo772/blog-management-api/repositories"
)

// UserStore is the persistence surface the services need for users.
// Satisfied by *repositories.UserRepository.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) (primitive.ObjectID, error)
}

// BlogStore is the persistence surface the services need for blogs.
// Satisfied by *repositories.BlogRepository.
type BlogStore interface {
	List(ctx context.Context, opt repositories.ListBlogsOptions) ([]models.BlogWithAuthor, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindWithAuthor(ctx context.Context, id primitive.ObjectID) (*models.BlogWithAuthor, error)
	Create(ctx context.Context, b *models.Blog) (primitive.ObjectID, error)
	UpdateOwned(ctx context.Context, id, ownerID primitive.ObjectID, fields bson.M) (bool, error)
	DeleteOwned(ctx context.Context, id, ownerID primitive.ObjectID) (bool, error)
}
