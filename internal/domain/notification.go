package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPayload is the structured payload attached to every alert
// push, mirrored to all clients as-is.
type NotificationPayload struct {
	Kind       string    `json:"kind"`
	Type       PingType  `json:"type"`
	RiderID    string    `json:"rider_id"`
	Name       string    `json:"name"`
	Vehicle    string    `json:"vehicle"`
	Color      string    `json:"color"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	ReportedAt time.Time `json:"reported_at"`
}

// NotificationJob is one queued fan-out. Exclude is the resolved reporter
// identity, empty when it could not be resolved (the job then reaches
// everyone, including the reporter).
type NotificationJob struct {
	ID         uuid.UUID           `json:"id"`
	Title      string              `json:"title"`
	Body       string              `json:"body"`
	Exclude    string              `json:"exclude,omitempty"`
	Payload    NotificationPayload `json:"payload"`
	EnqueuedAt time.Time           `json:"enqueued_at"`
}
