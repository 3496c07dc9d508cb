package service

import (
	"context"
	"time"
)

// Aggregate event types published after a successful commit.
const (
	EventMealPlanCreated        = "mealplan.created"
	EventMealPlanUpdated        = "mealplan.updated"
	EventMealPlanDeleted        = "mealplan.deleted"
	EventShoppingCreated        = "shopping.created"
	EventShoppingUpdated        = "shopping.updated"
	EventShoppingDeleted        = "shopping.deleted"
	EventShoppingDetailsChanged = "shopping.details_changed"
)

// AggregateEvent announces a committed change to an aggregate root.
type AggregateEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	OwnerID     string    `json:"owner_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an aggregate event for async processing
	Publish(ctx context.Context, event *AggregateEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
