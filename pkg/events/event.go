package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SUBSCRIPTION_ACTIVATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Well-known event codes emitted by the subscription core.
const (
	SubscriptionCreated   = "SUBSCRIPTION_CREATED"
	SubscriptionActivated = "SUBSCRIPTION_ACTIVATED"
	SubscriptionCancelled = "SUBSCRIPTION_CANCELLED"
	SubscriptionExpired   = "SUBSCRIPTION_EXPIRED"
	SubscriptionRenewed   = "SUBSCRIPTION_RENEWED"
	PaymentRecorded       = "PAYMENT_RECORDED"
	RefundProcessed       = "REFUND_PROCESSED"
)

// BaseEvent is the common implementation used by publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// New builds a BaseEvent stamped with the current time.
func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
