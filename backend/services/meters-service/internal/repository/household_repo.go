package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// HouseholdRepository handles the household_info table (one row per user).
type HouseholdRepository struct {
	db *sql.DB
}

// NewHouseholdRepository returns repository.
func NewHouseholdRepository(db *sql.DB) *HouseholdRepository {
	return &HouseholdRepository{db: db}
}

// GetByUser returns the user's profile or ErrNotFound.
func (r *HouseholdRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*models.HouseholdProfile, error) {
	const query = `
		SELECT id, user_id, number_of_people, property_type, house_size_m2, peb_rating,
		       year_of_construction, heating_type, has_solar_panels, has_electric_car, created_at, updated_at
		FROM household_info
		WHERE user_id = $1
	`
	var p models.HouseholdProfile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.NumberOfPeople,
		&p.PropertyType,
		&p.HouseSizeM2,
		&p.PEBRating,
		&p.YearOfConstruction,
		&p.HeatingType,
		&p.HasSolarPanels,
		&p.HasElectricCar,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert creates or replaces the profile of p.UserID.
func (r *HouseholdRepository) Upsert(ctx context.Context, p *models.HouseholdProfile) error {
	const query = `
		INSERT INTO household_info (user_id, number_of_people, property_type, house_size_m2, peb_rating,
			year_of_construction, heating_type, has_solar_panels, has_electric_car, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			number_of_people = EXCLUDED.number_of_people,
			property_type = EXCLUDED.property_type,
			house_size_m2 = EXCLUDED.house_size_m2,
			peb_rating = EXCLUDED.peb_rating,
			year_of_construction = EXCLUDED.year_of_construction,
			heating_type = EXCLUDED.heating_type,
			has_solar_panels = EXCLUDED.has_solar_panels,
			has_electric_car = EXCLUDED.has_electric_car,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		p.UserID,
		p.NumberOfPeople,
		p.PropertyType,
		p.HouseSizeM2,
		p.PEBRating,
		p.YearOfConstruction,
		p.HeatingType,
		p.HasSolarPanels,
		p.HasElectricCar,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}
