package postgres

import (
	"context"

	"github.com/ProTechPh/GeoPulse/internal/domain"

	"github.com/google/uuid"
)

// LedgerRepository is the append-only delivery ledger plus the operator-side
// read path. The core never updates or deletes records.
type LedgerRepository interface {
	Append(ctx context.Context, rec *domain.NotificationRecord) error
	ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]domain.NotificationRecord, error)
}

// IncidentReadRepository is the narrow read view the operator surface needs
// from the incident store.
type IncidentReadRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
}

// SubscriberRepository backs the user-directory collaborator.
type SubscriberRepository interface {
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	GetSubscriber(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error)
}
