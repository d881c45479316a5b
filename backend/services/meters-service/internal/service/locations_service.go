package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

// LocationStore is the storage contract of LocationsService.
type LocationStore interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Location, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, l *models.Location) error
	Update(ctx context.Context, l *models.Location) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// LocationInput is the editable part of a location.
type LocationInput struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
}

// LocationsService manages a user's locations.
type LocationsService struct {
	repo   LocationStore
	logger *zap.Logger
}

// NewLocationsService builds service.
func NewLocationsService(repo LocationStore, logger *zap.Logger) *LocationsService {
	return &LocationsService{repo: repo, logger: logger}
}

// List returns the user's locations.
func (s *LocationsService) List(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	return s.repo.List(ctx, userID)
}

// Create validates and stores a new location.
func (s *LocationsService) Create(ctx context.Context, userID uuid.UUID, input LocationInput) (*models.Location, error) {
	name, err := requiredName("name", input.Name)
	if err != nil {
		return nil, err
	}
	loc := &models.Location{UserID: userID, Name: name, Address: optionalText(input.Address)}
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	s.logger.Info("location created", zap.String("location_id", loc.ID.String()), zap.String("user_id", userID.String()))
	return loc, nil
}

// Update validates and rewrites a location.
func (s *LocationsService) Update(ctx context.Context, userID, id uuid.UUID, input LocationInput) (*models.Location, error) {
	name, err := requiredName("name", input.Name)
	if err != nil {
		return nil, err
	}
	loc := &models.Location{ID: id, UserID: userID, Name: name, Address: optionalText(input.Address)}
	if err := s.repo.Update(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// Delete removes a location.
func (s *LocationsService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}
