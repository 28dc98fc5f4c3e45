package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event is the wire envelope for published messages.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NewEvent wraps a typed event payload into the wire envelope.
func NewEvent(id, eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return Event{ID: id, Type: eventType, Payload: data}, nil
}

// Publisher abstracts event publication so services can be wired with a
// Kafka-backed publisher in production and a no-op one when the broker is
// not configured (or in tests).
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NoopPublisher) Close()                                                       {}
