package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"meterbook/backend/services/meters-service/internal/models"
)

type fakeMeterTypes struct {
	types []models.MeterType
	calls int
	err   error
}

func (f *fakeMeterTypes) List(context.Context) ([]models.MeterType, error) {
	f.calls++
	return f.types, f.err
}

func (f *fakeMeterTypes) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, t := range f.types {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeBenchmarks struct {
	tables map[uuid.UUID][]models.Benchmark
	calls  int
	err    error
}

func (f *fakeBenchmarks) ListByMeterType(_ context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error) {
	f.calls++
	return f.tables[meterTypeID], f.err
}

// memoryCache mimics the redis cache, including redis.Nil on a miss.
type memoryCache struct {
	types      []models.MeterType
	benchmarks map[uuid.UUID][]models.Benchmark
	err        error
}

func (c *memoryCache) MeterTypes(context.Context) ([]models.MeterType, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.types == nil {
		return nil, redis.Nil
	}
	return c.types, nil
}

func (c *memoryCache) SaveMeterTypes(_ context.Context, types []models.MeterType) error {
	if c.err != nil {
		return c.err
	}
	c.types = types
	return nil
}

func (c *memoryCache) Benchmarks(_ context.Context, id uuid.UUID) ([]models.Benchmark, error) {
	if c.err != nil {
		return nil, c.err
	}
	table, ok := c.benchmarks[id]
	if !ok {
		return nil, redis.Nil
	}
	return table, nil
}

func (c *memoryCache) SaveBenchmarks(_ context.Context, id uuid.UUID, table []models.Benchmark) error {
	if c.err != nil {
		return c.err
	}
	if c.benchmarks == nil {
		c.benchmarks = map[uuid.UUID][]models.Benchmark{}
	}
	c.benchmarks[id] = table
	return nil
}

type fakeLocations struct {
	locations []models.Location
	err       error
}

func (f *fakeLocations) List(_ context.Context, userID uuid.UUID) ([]models.Location, error) {
	out := make([]models.Location, 0)
	for _, l := range f.locations {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, f.err
}

func (f *fakeLocations) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	list, err := f.List(ctx, userID)
	return len(list), err
}

func (f *fakeLocations) Create(_ context.Context, l *models.Location) error {
	if f.err != nil {
		return f.err
	}
	l.ID = uuid.New()
	f.locations = append(f.locations, *l)
	return nil
}

func (f *fakeLocations) Update(_ context.Context, l *models.Location) error {
	for i, cur := range f.locations {
		if cur.ID == l.ID && cur.UserID == l.UserID {
			f.locations[i] = *l
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeLocations) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, cur := range f.locations {
		if cur.ID == id && cur.UserID == userID {
			f.locations = slices.Delete(f.locations, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

type fakeMeters struct {
	meters  []models.MeterDetail
	created []models.Meter
	err     error
}

func (f *fakeMeters) owned(userID uuid.UUID, activeOnly bool) []models.MeterDetail {
	out := make([]models.MeterDetail, 0)
	for _, m := range f.meters {
		if m.UserID == userID && (!activeOnly || m.IsActive) {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeMeters) List(_ context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return f.owned(userID, false), f.err
}

func (f *fakeMeters) ListActive(_ context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return f.owned(userID, true), f.err
}

func (f *fakeMeters) CountActive(_ context.Context, userID uuid.UUID) (int, error) {
	return len(f.owned(userID, true)), f.err
}

func (f *fakeMeters) Get(_ context.Context, userID, id uuid.UUID) (*models.MeterDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.meters {
		if m.ID == id && m.UserID == userID {
			m := m
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeMeters) Create(_ context.Context, m *models.Meter) error {
	if f.err != nil {
		return f.err
	}
	m.ID = uuid.New()
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMeters) Update(_ context.Context, m *models.Meter) error {
	for _, cur := range f.meters {
		if cur.ID == m.ID && cur.UserID == m.UserID {
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeMeters) Delete(_ context.Context, userID, id uuid.UUID) error {
	for _, cur := range f.meters {
		if cur.ID == id && cur.UserID == userID {
			return nil
		}
	}
	return ErrNotFound
}

// fakeReadings is shared by concurrent dashboard fetches.
type fakeReadings struct {
	mu       sync.Mutex
	owner    map[uuid.UUID]uuid.UUID
	byMeter  map[uuid.UUID][]models.Reading
	saved    []models.Reading
	limits   []int
	err      error
	errMeter uuid.UUID
}

func (f *fakeReadings) ListByMeter(_ context.Context, userID, meterID uuid.UUID, limit int) ([]models.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	if f.err != nil && (f.errMeter == uuid.Nil || f.errMeter == meterID) {
		return nil, f.err
	}
	if f.owner[meterID] != userID {
		return []models.Reading{}, nil
	}
	out := slices.Clone(f.byMeter[meterID])
	slices.SortFunc(out, func(a, b models.Reading) int { return b.ReadingDate.Compare(a.ReadingDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReadings) ListWithMeter(context.Context, uuid.UUID, *uuid.UUID) ([]models.ReadingWithMeter, error) {
	return []models.ReadingWithMeter{}, f.err
}

func (f *fakeReadings) Create(_ context.Context, userID uuid.UUID, r *models.Reading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.owner[r.MeterID] != userID {
		return ErrNotFound
	}
	r.ID = uuid.New()
	f.saved = append(f.saved, *r)
	return nil
}

func (f *fakeReadings) Update(_ context.Context, userID uuid.UUID, r *models.Reading) error {
	if f.owner[r.MeterID] != userID {
		return ErrNotFound
	}
	return nil
}

func (f *fakeReadings) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return f.err
}

type fakeHousehold struct {
	profile *models.HouseholdProfile
	err     error
}

func (f *fakeHousehold) GetByUser(_ context.Context, userID uuid.UUID) (*models.HouseholdProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.profile == nil || f.profile.UserID != userID {
		return nil, ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeHousehold) Upsert(_ context.Context, p *models.HouseholdProfile) error {
	if f.err != nil {
		return f.err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.profile = p
	return nil
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
