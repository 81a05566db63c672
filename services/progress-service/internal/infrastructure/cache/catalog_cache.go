package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"couplepath/internal/platform/logger"
	"couplepath/services/progress-service/internal/application/usecase"
	"couplepath/services/progress-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const DefaultTTL = time.Hour

// CatalogCache is a read-through redis cache in front of the content catalog.
// Redis failures fall back to the wrapped catalog.
type CatalogCache struct {
	next usecase.Catalog
	rdb  *redis.Client
	ttl  time.Duration
	log  *logger.Logger
}

func NewCatalogCache(next usecase.Catalog, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CatalogCache{next: next, rdb: rdb, ttl: ttl, log: log.With("component", "catalog_cache")}
}

var _ usecase.Catalog = (*CatalogCache)(nil)

func programKey(id string) string { return "catalog:program:" + id }
func unitsKey(id string) string   { return "catalog:units:" + id }
func groupsKey(id string) string  { return "catalog:groups:" + id }

func (c *CatalogCache) GetProgram(ctx context.Context, programID string) (*domain.Program, error) {
	return readThrough(ctx, c, programKey(programID), func() (*domain.Program, error) {
		return c.next.GetProgram(ctx, programID)
	})
}

func (c *CatalogCache) ListUnits(ctx context.Context, programID string) ([]domain.Unit, error) {
	return readThrough(ctx, c, unitsKey(programID), func() ([]domain.Unit, error) {
		return c.next.ListUnits(ctx, programID)
	})
}

// GetUnit is served from the cached unit list of the program.
func (c *CatalogCache) GetUnit(ctx context.Context, programID string, sequenceNumber int) (*domain.Unit, error) {
	units, err := c.ListUnits(ctx, programID)
	if err != nil {
		return nil, err
	}
	for i := range units {
		if units[i].SequenceNumber == sequenceNumber {
			return &units[i], nil
		}
	}
	return nil, fmt.Errorf("unit %d of program %q: %w", sequenceNumber, programID, domain.ErrNotFound)
}

func (c *CatalogCache) ListGroups(ctx context.Context, programID string) ([]domain.ProgramGroup, error) {
	return readThrough(ctx, c, groupsKey(programID), func() ([]domain.ProgramGroup, error) {
		return c.next.ListGroups(ctx, programID)
	})
}

// Invalidate drops every cached entry of the program, e.g. after a reseed.
func (c *CatalogCache) Invalidate(ctx context.Context, programID string) error {
	return c.rdb.Del(ctx, programKey(programID), unitsKey(programID), groupsKey(programID)).Err()
}

func readThrough[T any](ctx context.Context, c *CatalogCache, key string, load func() (T, error)) (T, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var cached T
		if json.Unmarshal(val, &cached) == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Debug("cache read failed", "key", key, "error", err)
	}

	out, err := load()
	if err != nil {
		return out, err
	}
	if data, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Debug("cache write failed", "key", key, "error", err)
		}
	}
	return out, nil
}
