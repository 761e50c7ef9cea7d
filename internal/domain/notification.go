package domain

import (
	"time"

	"github.com/google/uuid"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// NotificationRecord is one row of the delivery ledger: the durable outcome
// of a single delivery attempt. Records are append-only and survive deletion
// of the incident or user they reference.
type NotificationRecord struct {
	ID           uuid.UUID      `json:"id"`
	IncidentID   uuid.UUID      `json:"incident_id"`
	UserID       uuid.UUID      `json:"user_id"`
	Channel      Channel        `json:"channel"`
	Status       DeliveryStatus `json:"status"`
	SentAt       *time.Time     `json:"sent_at,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	RetryCount   int            `json:"retry_count"`
	CreatedAt    time.Time      `json:"created_at"`
}

// DeliveryResult is what a delivery channel reports back for one send.
type DeliveryResult struct {
	Success bool
	Error   string
}
