package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/models"
)

const minConstructionYear = 1800

// HouseholdStore is the storage contract of HouseholdService.
type HouseholdStore interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.HouseholdProfile, error)
	Upsert(ctx context.Context, p *models.HouseholdProfile) error
}

// HouseholdInput is the household form.
type HouseholdInput struct {
	NumberOfPeople     *int     `json:"number_of_people"`
	PropertyType       *string  `json:"property_type"`
	HouseSizeM2        *float64 `json:"house_size_m2"`
	PEBRating          *string  `json:"peb_rating"`
	YearOfConstruction *int     `json:"year_of_construction"`
	HeatingType        *string  `json:"heating_type"`
	HasSolarPanels     bool     `json:"has_solar_panels"`
	HasElectricCar     bool     `json:"has_electric_car"`
}

// HouseholdService manages the single household profile of a user.
type HouseholdService struct {
	repo   HouseholdStore
	logger *zap.Logger
	now    func() time.Time
}

// NewHouseholdService builds service.
func NewHouseholdService(repo HouseholdStore, logger *zap.Logger) *HouseholdService {
	return &HouseholdService{repo: repo, logger: logger, now: time.Now}
}

// Get returns the user's profile or ErrNotFound.
func (s *HouseholdService) Get(ctx context.Context, userID uuid.UUID) (*models.HouseholdProfile, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Save validates the form and creates or replaces the profile.
func (s *HouseholdService) Save(ctx context.Context, userID uuid.UUID, input HouseholdInput) (*models.HouseholdProfile, error) {
	if input.NumberOfPeople != nil && *input.NumberOfPeople < 1 {
		return nil, invalid("number_of_people", "must be at least 1")
	}
	if input.HouseSizeM2 != nil && *input.HouseSizeM2 <= 0 {
		return nil, invalid("house_size_m2", "must be positive")
	}
	if y := input.YearOfConstruction; y != nil && (*y < minConstructionYear || *y > s.now().Year()+1) {
		return nil, invalid("year_of_construction", "is out of range")
	}

	property := optionalText(input.PropertyType)
	if property != nil {
		p := strings.ToLower(*property)
		if p != models.PropertyHouse && p != models.PropertyApartment {
			return nil, invalid("property_type", "must be house or apartment")
		}
		property = &p
	}

	profile := &models.HouseholdProfile{
		UserID:             userID,
		NumberOfPeople:     input.NumberOfPeople,
		PropertyType:       property,
		HouseSizeM2:        input.HouseSizeM2,
		PEBRating:          optionalText(input.PEBRating),
		YearOfConstruction: input.YearOfConstruction,
		HeatingType:        optionalText(input.HeatingType),
		HasSolarPanels:     input.HasSolarPanels,
		HasElectricCar:     input.HasElectricCar,
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("household profile saved", zap.String("user_id", userID.String()))
	return profile, nil
}
