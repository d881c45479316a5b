package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

// ReadingStore is the storage contract of ReadingsService.
type ReadingStore interface {
	ListByMeter(ctx context.Context, userID, meterID uuid.UUID, limit int) ([]models.Reading, error)
	ListWithMeter(ctx context.Context, userID uuid.UUID, meterID *uuid.UUID) ([]models.ReadingWithMeter, error)
	Create(ctx context.Context, userID uuid.UUID, r *models.Reading) error
	Update(ctx context.Context, userID uuid.UUID, r *models.Reading) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ReadingInput is a reading as entered by the user.
type ReadingInput struct {
	MeterID     string   `json:"meter_id"`
	ReadingDate string   `json:"reading_date"`
	Value       *float64 `json:"value"`
	Notes       *string  `json:"notes"`
	PhotoURL    *string  `json:"photo_url"`
}

// ReadingsService records and lists readings.
type ReadingsService struct {
	repo   ReadingStore
	logger *zap.Logger
}

// NewReadingsService builds service.
func NewReadingsService(repo ReadingStore, logger *zap.Logger) *ReadingsService {
	return &ReadingsService{repo: repo, logger: logger}
}

// List returns the user's readings newest first, optionally for one meter.
func (s *ReadingsService) List(ctx context.Context, userID uuid.UUID, meterID *uuid.UUID) ([]models.ReadingWithMeter, error) {
	return s.repo.ListWithMeter(ctx, userID, meterID)
}

// Create validates and stores a reading. The meter must belong to the user.
func (s *ReadingsService) Create(ctx context.Context, userID uuid.UUID, input ReadingInput) (*models.Reading, error) {
	reading, err := buildReading(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, userID, reading); err != nil {
		return nil, err
	}
	s.logger.Debug("reading recorded",
		zap.String("reading_id", reading.ID.String()),
		zap.String("meter_id", reading.MeterID.String()),
		zap.Float64("value", reading.Value),
	)
	return reading, nil
}

// Update validates and rewrites a reading.
func (s *ReadingsService) Update(ctx context.Context, userID, id uuid.UUID, input ReadingInput) (*models.Reading, error) {
	reading, err := buildReading(input)
	if err != nil {
		return nil, err
	}
	reading.ID = id
	if err := s.repo.Update(ctx, userID, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

// Delete removes a reading.
func (s *ReadingsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func buildReading(input ReadingInput) (*models.Reading, error) {
	meterID, err := parseID("meter_id", input.MeterID)
	if err != nil {
		return nil, err
	}
	date, err := parseReadingDate(input.ReadingDate)
	if err != nil {
		return nil, err
	}
	value, err := requiredValue(input.Value)
	if err != nil {
		return nil, err
	}
	return &models.Reading{
		MeterID:     meterID,
		ReadingDate: date,
		Value:       value,
		Notes:       optionalText(input.Notes),
		PhotoURL:    optionalText(input.PhotoURL),
	}, nil
}
