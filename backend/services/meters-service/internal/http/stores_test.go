package httpserver

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
	"meterbook/backend/services/meters-service/internal/repository"
)

var errStorage = errors.New("storage unavailable")

type stubTypes struct{ types []models.MeterType }

func (s *stubTypes) List(context.Context) ([]models.MeterType, error) { return s.types, nil }

func (s *stubTypes) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	for _, t := range s.types {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type stubBenchmarks struct{}

func (stubBenchmarks) ListByMeterType(context.Context, uuid.UUID) ([]models.Benchmark, error) {
	return []models.Benchmark{}, nil
}

type stubLocations struct{ failing bool }

func (s *stubLocations) List(context.Context, uuid.UUID) ([]models.Location, error) {
	if s.failing {
		return nil, errStorage
	}
	return []models.Location{}, nil
}

func (s *stubLocations) Count(context.Context, uuid.UUID) (int, error) { return 0, nil }

func (s *stubLocations) Create(_ context.Context, l *models.Location) error {
	l.ID = uuid.New()
	return nil
}

func (s *stubLocations) Update(context.Context, *models.Location) error { return repository.ErrNotFound }

func (s *stubLocations) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubMeters struct{ meters []models.MeterDetail }

func (s *stubMeters) List(_ context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	out := make([]models.MeterDetail, 0)
	for _, m := range s.meters {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubMeters) ListActive(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return s.List(ctx, userID)
}

func (s *stubMeters) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	list, _ := s.List(ctx, userID)
	return len(list), nil
}

func (s *stubMeters) Get(_ context.Context, userID, id uuid.UUID) (*models.MeterDetail, error) {
	for _, m := range s.meters {
		if m.ID == id && m.UserID == userID {
			m := m
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubMeters) Create(_ context.Context, m *models.Meter) error {
	m.ID = uuid.New()
	return nil
}

func (s *stubMeters) Update(context.Context, *models.Meter) error { return nil }

func (s *stubMeters) Delete(_ context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(context.Background(), userID, id); err != nil {
		return err
	}
	return nil
}

// stubReadings returns readings newest first, like the repository.
type stubReadings struct {
	readings map[uuid.UUID][]models.Reading
	filter   *uuid.UUID
}

func (s *stubReadings) ListByMeter(_ context.Context, _ uuid.UUID, meterID uuid.UUID, _ int) ([]models.Reading, error) {
	return s.readings[meterID], nil
}

func (s *stubReadings) ListWithMeter(_ context.Context, _ uuid.UUID, meterID *uuid.UUID) ([]models.ReadingWithMeter, error) {
	s.filter = meterID
	return []models.ReadingWithMeter{}, nil
}

func (s *stubReadings) Create(_ context.Context, _ uuid.UUID, r *models.Reading) error {
	r.ID = uuid.New()
	return nil
}

func (s *stubReadings) Update(context.Context, uuid.UUID, *models.Reading) error { return nil }

func (s *stubReadings) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubHousehold struct{ profile *models.HouseholdProfile }

func (s *stubHousehold) GetByUser(context.Context, uuid.UUID) (*models.HouseholdProfile, error) {
	if s.profile == nil {
		return nil, repository.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubHousehold) Upsert(_ context.Context, p *models.HouseholdProfile) error {
	p.ID = uuid.New()
	s.profile = p
	return nil
}
