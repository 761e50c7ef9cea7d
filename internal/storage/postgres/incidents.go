package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Incidents struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidents(pool *pgxpool.Pool, logger *slog.Logger) *Incidents {
	return &Incidents{pool: pool, logger: logger}
}

func (p *Incidents) Get(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	const op = "postgres.Incidents.Get"

	const query = `
SELECT id,
       title,
       category,
       severity,
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       status,
       reported_by,
       created_at
FROM incidents
WHERE id = $1
`

	var inc domain.Incident
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&inc.ID,
		&inc.Title,
		&inc.Category,
		&inc.Severity,
		&inc.Location.Lat,
		&inc.Location.Lng,
		&inc.Status,
		&inc.ReportedBy,
		&inc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &inc, nil
}
