package pubsub

import "mealplanner/internal/domain/service"

// eventAttributes are the message attributes used for subscription filters and tracing.
func eventAttributes(event *service.AggregateEvent) map[string]string {
	attributes := map[string]string{
		"event_type":   event.Type,
		"aggregate_id": event.AggregateID,
		"owner_id":     event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
