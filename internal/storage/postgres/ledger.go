package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Ledger struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLedger(pool *pgxpool.Pool, logger *slog.Logger) *Ledger {
	return &Ledger{pool: pool, logger: logger}
}

// Append inserts one outcome record. Rows carry their own uuid so concurrent
// inserts never contend on a shared counter. No foreign-key cascade: records
// outlive the incident and user they reference.
func (p *Ledger) Append(ctx context.Context, rec *domain.NotificationRecord) error {
	const op = "postgres.Ledger.Append"

	if rec == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if rec.IncidentID == uuid.Nil || rec.UserID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	const query = `
INSERT INTO notifications (id, incident_id, user_id, channel, status, sent_at, error_message, retry_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

	_, err := p.pool.Exec(ctx, query,
		rec.ID,
		rec.IncidentID,
		rec.UserID,
		rec.Channel,
		rec.Status,
		rec.SentAt,
		rec.ErrorMessage,
		rec.RetryCount,
		rec.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("incident_id", rec.IncidentID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *Ledger) ListByIncident(ctx context.Context, incidentID uuid.UUID) ([]domain.NotificationRecord, error) {
	const op = "postgres.Ledger.ListByIncident"

	if incidentID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
SELECT id, incident_id, user_id, channel, status, sent_at, error_message, retry_count, created_at
FROM notifications
WHERE incident_id = $1
ORDER BY created_at DESC
`

	rows, err := p.pool.Query(ctx, query, incidentID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	records := make([]domain.NotificationRecord, 0, 8)
	for rows.Next() {
		var rec domain.NotificationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.IncidentID,
			&rec.UserID,
			&rec.Channel,
			&rec.Status,
			&rec.SentAt,
			&rec.ErrorMessage,
			&rec.RetryCount,
			&rec.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return records, nil
}
