package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

func TestReferenceServiceCachesMeterTypes(t *testing.T) {
	types := &fakeMeterTypes{types: []models.MeterType{{ID: uuid.New(), Name: "Électricité", Unit: "kWh"}}}
	cache := &memoryCache{}
	svc := NewReferenceService(types, &fakeBenchmarks{}, cache, nil, zap.NewNop())

	first, err := svc.MeterTypes(context.Background())
	require.NoError(t, err)
	second, err := svc.MeterTypes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, types.calls)
}

func TestReferenceServiceCachesEmptyBenchmarkTable(t *testing.T) {
	typeID := uuid.New()
	benchmarks := &fakeBenchmarks{tables: map[uuid.UUID][]models.Benchmark{}}
	cache := &memoryCache{}
	svc := NewReferenceService(&fakeMeterTypes{}, benchmarks, cache, nil, zap.NewNop())

	for i := 0; i < 2; i++ {
		table, err := svc.Benchmarks(context.Background(), typeID)
		require.NoError(t, err)
		assert.Empty(t, table)
	}
	assert.Equal(t, 1, benchmarks.calls)
}

func TestReferenceServiceFallsBackWhenCacheFails(t *testing.T) {
	typeID := uuid.New()
	table := []models.Benchmark{{ID: uuid.New(), MeterTypeID: typeID, PropertyType: models.PropertyAny}}
	benchmarks := &fakeBenchmarks{tables: map[uuid.UUID][]models.Benchmark{typeID: table}}
	svc := NewReferenceService(&fakeMeterTypes{}, benchmarks, &memoryCache{err: errors.New("connection refused")}, nil, zap.NewNop())

	got, err := svc.Benchmarks(context.Background(), typeID)
	require.NoError(t, err)
	assert.Equal(t, table, got)

	got, err = svc.Benchmarks(context.Background(), typeID)
	require.NoError(t, err)
	assert.Equal(t, table, got)
	assert.Equal(t, 2, benchmarks.calls)
}

func TestReferenceServiceWithoutCache(t *testing.T) {
	types := &fakeMeterTypes{types: []models.MeterType{{ID: uuid.New(), Name: "Eau", Unit: "m³"}}}
	svc := NewReferenceService(types, &fakeBenchmarks{}, nil, nil, zap.NewNop())

	_, err := svc.MeterTypes(context.Background())
	require.NoError(t, err)
	_, err = svc.MeterTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, types.calls)

	ok, err := svc.MeterTypeExists(context.Background(), types.types[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReferenceServiceStorageError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewReferenceService(&fakeMeterTypes{err: boom}, &fakeBenchmarks{}, &memoryCache{}, nil, zap.NewNop())

	_, err := svc.MeterTypes(context.Background())
	assert.ErrorIs(t, err, boom)
}

type lookupCounter map[string]int

func (c lookupCounter) CacheLookup(table string, hit bool) {
	key := table + ":miss"
	if hit {
		key = table + ":hit"
	}
	c[key]++
}

func TestReferenceServiceReportsLookups(t *testing.T) {
	types := &fakeMeterTypes{types: []models.MeterType{{ID: uuid.New(), Name: "Gaz", Unit: "m³"}}}
	counter := lookupCounter{}
	svc := NewReferenceService(types, &fakeBenchmarks{}, &memoryCache{}, counter, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.MeterTypes(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, lookupCounter{"meter_types:miss": 1, "meter_types:hit": 2}, counter)
}
