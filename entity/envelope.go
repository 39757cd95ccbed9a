package entity

import "time"

type EventMeta struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Version       int       `json:"version"`
	OccurredAt    time.Time `json:"occurred_at"`
	CorrelationID *string   `json:"correlation_id,omitempty"`
}

// Envelope wraps an event published to the message broker.
type Envelope struct {
	Meta EventMeta   `json:"meta"`
	Data interface{} `json:"data"`
}
