package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

// MeterStore is the storage contract of MetersService.
type MeterStore interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error)
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.MeterDetail, error)
	Create(ctx context.Context, m *models.Meter) error
	Update(ctx context.Context, m *models.Meter) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// MeterInput is the editable part of a meter.
type MeterInput struct {
	Name         string  `json:"name"`
	MeterTypeID  string  `json:"meter_type_id"`
	LocationID   *string `json:"location_id"`
	SerialNumber *string `json:"serial_number"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

// MetersService manages a user's meters.
type MetersService struct {
	repo      MeterStore
	reference *ReferenceService
	logger    *zap.Logger
}

// NewMetersService builds service.
func NewMetersService(repo MeterStore, reference *ReferenceService, logger *zap.Logger) *MetersService {
	return &MetersService{repo: repo, reference: reference, logger: logger}
}

// List returns the user's meters with type and location.
func (s *MetersService) List(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return s.repo.List(ctx, userID)
}

// Get returns one meter with type and location.
func (s *MetersService) Get(ctx context.Context, userID, id uuid.UUID) (*models.MeterDetail, error) {
	return s.repo.Get(ctx, userID, id)
}

// Create validates and stores a new meter.
func (s *MetersService) Create(ctx context.Context, userID uuid.UUID, input MeterInput) (*models.Meter, error) {
	meter, err := s.build(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		meter.IsActive = true
	}
	if err := s.repo.Create(ctx, meter); err != nil {
		return nil, err
	}
	s.logger.Info("meter created", zap.String("meter_id", meter.ID.String()), zap.String("user_id", userID.String()))
	return meter, nil
}

// Update validates and rewrites a meter. An omitted is_active keeps the stored flag.
func (s *MetersService) Update(ctx context.Context, userID, id uuid.UUID, input MeterInput) (*models.Meter, error) {
	meter, err := s.build(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	if input.IsActive == nil {
		current, err := s.repo.Get(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		meter.IsActive = current.IsActive
	}
	meter.ID = id
	if err := s.repo.Update(ctx, meter); err != nil {
		return nil, err
	}
	return meter, nil
}

// Delete removes a meter together with its readings.
func (s *MetersService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *MetersService) build(ctx context.Context, userID uuid.UUID, input MeterInput) (*models.Meter, error) {
	name, err := requiredName("name", input.Name)
	if err != nil {
		return nil, err
	}
	typeID, err := parseID("meter_type_id", input.MeterTypeID)
	if err != nil {
		return nil, err
	}
	locationID, err := optionalID("location_id", input.LocationID)
	if err != nil {
		return nil, err
	}

	ok, err := s.reference.MeterTypeExists(ctx, typeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalid("meter_type_id", "is not a known meter type")
	}

	active := false
	if input.IsActive != nil {
		active = *input.IsActive
	}
	return &models.Meter{
		UserID:       userID,
		LocationID:   locationID,
		MeterTypeID:  typeID,
		Name:         name,
		SerialNumber: optionalText(input.SerialNumber),
		Description:  optionalText(input.Description),
		IsActive:     active,
	}, nil
}
