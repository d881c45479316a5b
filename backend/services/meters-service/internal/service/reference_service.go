package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

// MeterTypeStore reads meter types from storage.
type MeterTypeStore interface {
	List(ctx context.Context) ([]models.MeterType, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// BenchmarkStore reads benchmark tables from storage.
type BenchmarkStore interface {
	ListByMeterType(ctx context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error)
}

// ReferenceCache caches reference tables. Misses are reported as redis.Nil.
type ReferenceCache interface {
	MeterTypes(ctx context.Context) ([]models.MeterType, error)
	SaveMeterTypes(ctx context.Context, types []models.MeterType) error
	Benchmarks(ctx context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error)
	SaveBenchmarks(ctx context.Context, meterTypeID uuid.UUID, table []models.Benchmark) error
}

// CacheMetrics counts cache hits and misses per table.
type CacheMetrics interface {
	CacheLookup(table string, hit bool)
}

// ReferenceService serves static reference data with an optional cache in front.
type ReferenceService struct {
	types      MeterTypeStore
	benchmarks BenchmarkStore
	cache      ReferenceCache
	metrics    CacheMetrics
	logger     *zap.Logger
}

// NewReferenceService builds service. cache and metrics may be nil.
func NewReferenceService(types MeterTypeStore, benchmarks BenchmarkStore, cache ReferenceCache, metrics CacheMetrics, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{
		types:      types,
		benchmarks: benchmarks,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
	}
}

// MeterTypes returns all meter types.
func (s *ReferenceService) MeterTypes(ctx context.Context) ([]models.MeterType, error) {
	if s.cache != nil {
		types, err := s.cache.MeterTypes(ctx)
		s.observe("meter_types", err)
		if err == nil {
			return types, nil
		}
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SaveMeterTypes(ctx, types); err != nil {
			s.logger.Warn("failed to cache meter types", zap.Error(err))
		}
	}
	return types, nil
}

// MeterTypeExists reports whether id is a known meter type.
func (s *ReferenceService) MeterTypeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.types.Exists(ctx, id)
}

// Benchmarks returns the benchmark table of one meter type.
func (s *ReferenceService) Benchmarks(ctx context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error) {
	if s.cache != nil {
		table, err := s.cache.Benchmarks(ctx, meterTypeID)
		s.observe("benchmarks", err)
		if err == nil {
			return table, nil
		}
	}

	table, err := s.benchmarks.ListByMeterType(ctx, meterTypeID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SaveBenchmarks(ctx, meterTypeID, table); err != nil {
			s.logger.Warn("failed to cache benchmarks", zap.Error(err), zap.String("meter_type_id", meterTypeID.String()))
		}
	}
	return table, nil
}

func (s *ReferenceService) observe(table string, err error) {
	if s.metrics != nil {
		s.metrics.CacheLookup(table, err == nil)
	}
	if err == nil || errors.Is(err, redis.Nil) {
		return
	}
	s.logger.Warn("reference cache unavailable", zap.String("table", table), zap.Error(err))
}
