package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"meterbook/backend/services/meters-service/internal/models"
)

// ReferenceCache keeps read-only reference tables (meter types, benchmark tables) in
// redis. A miss is reported as redis.Nil. Derived consumption values are never cached.
type ReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReferenceCache returns redis-backed cache.
func NewReferenceCache(client *redis.Client, ttl time.Duration) *ReferenceCache {
	return &ReferenceCache{client: client, ttl: ttl}
}

const (
	meterTypesKey    = "meters:reference:meter_types"
	benchmarksPrefix = "meters:reference:benchmarks:"
)

func benchmarksKey(meterTypeID uuid.UUID) string {
	return benchmarksPrefix + meterTypeID.String()
}

// MeterTypes returns the cached meter type list.
func (c *ReferenceCache) MeterTypes(ctx context.Context) ([]models.MeterType, error) {
	var types []models.MeterType
	if err := c.get(ctx, meterTypesKey, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// SaveMeterTypes caches the meter type list.
func (c *ReferenceCache) SaveMeterTypes(ctx context.Context, types []models.MeterType) error {
	return c.set(ctx, meterTypesKey, types)
}

// Benchmarks returns the cached benchmark table of one meter type.
func (c *ReferenceCache) Benchmarks(ctx context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error) {
	var table []models.Benchmark
	if err := c.get(ctx, benchmarksKey(meterTypeID), &table); err != nil {
		return nil, err
	}
	return table, nil
}

// SaveBenchmarks caches the benchmark table of one meter type. Empty tables are
// cached too so that types without benchmarks do not hit storage every time.
func (c *ReferenceCache) SaveBenchmarks(ctx context.Context, meterTypeID uuid.UUID, table []models.Benchmark) error {
	if table == nil {
		table = []models.Benchmark{}
	}
	return c.set(ctx, benchmarksKey(meterTypeID), table)
}

// Invalidate drops every cached reference table, e.g. after migrations reseeded them.
func (c *ReferenceCache) Invalidate(ctx context.Context) error {
	keys := []string{meterTypesKey}
	iter := c.client.Scan(ctx, 0, benchmarksPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *ReferenceCache) get(ctx context.Context, key string, dest any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

func (c *ReferenceCache) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
