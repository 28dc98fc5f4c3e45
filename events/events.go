package events

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType identifies a blog lifecycle event.
type EventType string

const (
	BlogCreated EventType = "blog.created"
	BlogUpdated EventType = "blog.updated"
	BlogDeleted EventType = "blog.deleted"
)

// BaseEvent is the common header of every published event.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// GetType returns the event type.
func (e BaseEvent) GetType() EventType {
	return e.Type
}

// GetID returns the event id.
func (e BaseEvent) GetID() string {
	return e.ID
}

// NewBaseEvent builds the header for a freshly emitted event.
func NewBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    "api",
		Version:   "1.0",
	}
}

// BlogCreatedEvent is published after a blog post is persisted.
type BlogCreatedEvent struct {
	BaseEvent
	BlogID   primitive.ObjectID `json:"blog_id"`
	UserID   primitive.ObjectID `json:"user_id"`
	Title    string             `json:"title"`
	Category []string           `json:"category"`
}

// BlogUpdatedEvent is published after an owner updates their post.
// Fields lists the keys that changed.
type BlogUpdatedEvent struct {
	BaseEvent
	BlogID primitive.ObjectID `json:"blog_id"`
	UserID primitive.ObjectID `json:"user_id"`
	Fields []string           `json:"fields"`
}

// BlogDeletedEvent is published after an owner deletes their post.
type BlogDeletedEvent struct {
	BaseEvent
	BlogID primitive.ObjectID `json:"blog_id"`
	UserID primitive.ObjectID `json:"user_id"`
}
