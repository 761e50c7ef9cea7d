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

type Subscribers struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubscribers(pool *pgxpool.Pool, logger *slog.Logger) *Subscribers {
	return &Subscribers{pool: pool, logger: logger}
}

// ListSubscribers returns every user with notifications enabled. Eligibility
// (radius, category, sentinel location) is the filter's concern, not SQL's.
func (p *Subscribers) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	const op = "postgres.Subscribers.List"

	const query = `
SELECT id,
       email,
       COALESCE(phone, ''),
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       notify_enabled,
       notify_radius_m,
       notify_categories
FROM users
WHERE notify_enabled = TRUE
`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	subs := make([]domain.Subscriber, 0, 32)
	for rows.Next() {
		sub, err := scanSubscriber(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return subs, nil
}

func (p *Subscribers) GetSubscriber(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	const op = "postgres.Subscribers.Get"

	const query = `
SELECT id,
       email,
       COALESCE(phone, ''),
       ST_Y(geo_point::geometry) AS lat,
       ST_X(geo_point::geometry) AS lng,
       notify_enabled,
       notify_radius_m,
       notify_categories
FROM users
WHERE id = $1
`

	row := p.pool.QueryRow(ctx, query, id)
	sub, err := scanSubscriber(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &sub, nil
}

func scanSubscriber(row pgx.Row) (domain.Subscriber, error) {
	var (
		sub        domain.Subscriber
		categories []string
	)
	err := row.Scan(
		&sub.ID,
		&sub.Email,
		&sub.Phone,
		&sub.Location.Lat,
		&sub.Location.Lng,
		&sub.Preferences.Enabled,
		&sub.Preferences.RadiusMeters,
		&categories,
	)
	if err != nil {
		return domain.Subscriber{}, err
	}

	if len(categories) > 0 {
		sub.Preferences.IncidentTypes = make([]domain.Category, len(categories))
		for i, c := range categories {
			sub.Preferences.IncidentTypes[i] = domain.Category(c)
		}
	}
	return sub, nil
}
