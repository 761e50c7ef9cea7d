package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/ProTechPh/GeoPulse/internal/domain"
	"github.com/ProTechPh/GeoPulse/internal/notify"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SubscriberCache sits in front of the subscriber directory and caches the
// full snapshot for a short TTL so a burst of incidents does not hammer the
// directory. Cache problems fall through to the source; reporter lookups
// always bypass the cache.
type SubscriberCache struct {
	client *goredis.Client
	source notify.SubscriberDirectory
	logger *slog.Logger
	key    string
	ttl    time.Duration
}

func NewSubscriberCache(r *Redis, source notify.SubscriberDirectory, logger *slog.Logger, ttl time.Duration) *SubscriberCache {
	return &SubscriberCache{
		client: r.Client,
		source: source,
		logger: logger,
		key:    "subscribers:snapshot",
		ttl:    ttl,
	}
}

func (c *SubscriberCache) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == nil {
		var subs []domain.Subscriber
		if err := json.Unmarshal(data, &subs); err == nil {
			return subs, nil
		}
		c.logger.Warn("subscriber cache corrupt, refreshing", slog.String("key", c.key))
	} else if !errors.Is(err, goredis.Nil) {
		c.logger.Warn("subscriber cache read failed", slog.Any("error", err))
	}

	subs, err := c.source.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(subs); err == nil {
		if err := c.client.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
			c.logger.Warn("subscriber cache write failed", slog.Any("error", err))
		}
	}

	return subs, nil
}

func (c *SubscriberCache) GetSubscriber(ctx context.Context, id uuid.UUID) (*domain.Subscriber, error) {
	return c.source.GetSubscriber(ctx, id)
}
