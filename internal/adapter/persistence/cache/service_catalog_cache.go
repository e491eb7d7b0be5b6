package cache

import (
	"context"
	"encoding/json"
	"time"

	"repair_intake/internal/domain/entities"
	"repair_intake/internal/infrastructure/logging"
	"repair_intake/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	keyPrefix = "repair_intake:catalog:"
	activeKey = keyPrefix + "active"
)

// ServiceCatalogCache caches the displayed price list in Redis for up to ttl.
// Quote lookups bypass it. Redis failures fall through to the wrapped
// repository.
type ServiceCatalogCache struct {
	inner  interfaces.IServiceCatalogRepository
	redis  *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogCache)(nil)

func NewServiceCatalogCache(inner interfaces.IServiceCatalogRepository, client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *ServiceCatalogCache {
	l := logging.OrNop(logger).With().Str("component", "catalog_cache").Logger()
	return &ServiceCatalogCache{inner: inner, redis: client, ttl: ttl, logger: &l}
}

func (c *ServiceCatalogCache) enabled() bool {
	return c.redis != nil && c.ttl > 0
}

// LookupActivePrices always reads the backing store. Quotes must reflect the
// catalog as it is when the request is priced.
func (c *ServiceCatalogCache) LookupActivePrices(ctx context.Context, names []string) (map[string]entities.ServiceCatalogEntry, error) {
	return c.inner.LookupActivePrices(ctx, names)
}

func (c *ServiceCatalogCache) ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error) {
	if !c.enabled() {
		return c.inner.ListActive(ctx)
	}
	if val, err := c.redis.Get(ctx, activeKey).Result(); err == nil {
		var cached []entities.ServiceCatalogEntry
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		c.logger.Warn().Err(err).Msg("cache read failed")
	}

	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(out); err == nil {
		if err := c.redis.Set(ctx, activeKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Msg("cache write failed")
		}
	}
	return out, nil
}

// Upsert writes through and drops the cached list.
func (c *ServiceCatalogCache) Upsert(ctx context.Context, e entities.ServiceCatalogEntry) error {
	if err := c.inner.Upsert(ctx, e); err != nil {
		return err
	}
	if c.enabled() {
		if err := c.redis.Del(ctx, activeKey).Err(); err != nil {
			c.logger.Warn().Err(err).Str("service_name", e.ServiceName).Msg("cache invalidation failed")
		}
	}
	return nil
}
