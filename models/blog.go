package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog post document.
// Collection: blogs
//
// UserID references the owning user and is set once at creation. Ownership
// never transfers; every mutation is filtered on both _id and user_id.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Category  []string           `bson:"category" json:"category"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
}

// BlogWithAuthor is a blog with the owner's public fields expanded inline,
// produced by a $lookup against the users collection.
type BlogWithAuthor struct {
	Blog   `bson:",inline"`
	Author *UserRef `bson:"author,omitempty" json:"author,omitempty"`
}
