package notify

import (
	"context"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notify.go -destination=mocks/mock.go

// SubscriberDirectory is the user-directory collaborator. ListSubscribers
// returns every user with notifications enabled; GetSubscriber looks up one
// user regardless of their enabled flag (the caller decides).
type SubscriberDirectory interface {
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	GetSubscriber(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
}

// DeliveryChannel is one way of reaching a recipient (email, SMS). Send is
// expected to bound its own network timeout and never panic; failures come
// back inside the DeliveryResult.
type DeliveryChannel interface {
	Kind() domain.Channel
	Send(ctx context.Context, msg Message) domain.DeliveryResult
}

// Ledger records one outcome per attempted delivery. Append-only.
type Ledger interface {
	Append(ctx context.Context, rec *domain.NotificationRecord) error
}

// JobQueue decouples the entity-mutation request path from dispatch work.
type JobQueue interface {
	Enqueue(ctx context.Context, job domain.NotificationJob) error
	Dequeue(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error)
}
