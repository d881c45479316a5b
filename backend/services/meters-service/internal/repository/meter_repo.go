package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// MeterRepository handles meters and their joined type/location.
type MeterRepository struct {
	db *sql.DB
}

// NewMeterRepository returns repository.
func NewMeterRepository(db *sql.DB) *MeterRepository {
	return &MeterRepository{db: db}
}

// Each meter has exactly one type (inner join) and at most one location (left join).
const meterDetailSelect = `
	SELECT m.id, m.user_id, m.location_id, m.meter_type_id, m.name, m.serial_number, m.description,
	       m.is_active, m.created_at, m.updated_at,
	       t.id, t.name, t.unit, t.icon, t.color,
	       l.id, l.name
	FROM meters m
	JOIN meter_types t ON t.id = m.meter_type_id
	LEFT JOIN locations l ON l.id = m.location_id
`

func scanMeterDetail(row scanner) (models.MeterDetail, error) {
	var (
		d       models.MeterDetail
		locID   *uuid.UUID
		locName sql.NullString
	)
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.LocationID,
		&d.MeterTypeID,
		&d.Name,
		&d.SerialNumber,
		&d.Description,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.MeterType.ID,
		&d.MeterType.Name,
		&d.MeterType.Unit,
		&d.MeterType.Icon,
		&d.MeterType.Color,
		&locID,
		&locName,
	)
	if err != nil {
		return d, err
	}
	if locID != nil {
		d.Location = &models.LocationRef{ID: *locID, Name: locName.String}
	}
	return d, nil
}

func (r *MeterRepository) queryDetails(ctx context.Context, query string, args ...any) ([]models.MeterDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meters := make([]models.MeterDetail, 0)
	for rows.Next() {
		d, err := scanMeterDetail(rows)
		if err != nil {
			return nil, err
		}
		meters = append(meters, d)
	}
	return meters, rows.Err()
}

// List returns all of the user's meters, newest first.
func (r *MeterRepository) List(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return r.queryDetails(ctx, meterDetailSelect+` WHERE m.user_id = $1 ORDER BY m.created_at DESC`, userID)
}

// ListActive returns the user's active meters ordered by name.
func (r *MeterRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]models.MeterDetail, error) {
	return r.queryDetails(ctx, meterDetailSelect+` WHERE m.user_id = $1 AND m.is_active ORDER BY m.name`, userID)
}

// CountActive returns the number of active meters of the user.
func (r *MeterRepository) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM meters WHERE user_id = $1 AND is_active`, userID).Scan(&n)
	return n, err
}

// Get returns one meter of the user or ErrNotFound.
func (r *MeterRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.MeterDetail, error) {
	d, err := scanMeterDetail(r.db.QueryRowContext(ctx, meterDetailSelect+` WHERE m.id = $1 AND m.user_id = $2`, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a meter. The location, when set, must belong to the same user.
func (r *MeterRepository) Create(ctx context.Context, m *models.Meter) error {
	const query = `
		INSERT INTO meters (user_id, location_id, meter_type_id, name, serial_number, description, is_active, created_at, updated_at)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::text, $6::text, $7::boolean, NOW(), NOW()
		WHERE $2::uuid IS NULL OR EXISTS (SELECT 1 FROM locations WHERE id = $2::uuid AND user_id = $1::uuid)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		m.UserID,
		m.LocationID,
		m.MeterTypeID,
		m.Name,
		m.SerialNumber,
		m.Description,
		m.IsActive,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Update rewrites the editable fields of a meter owned by m.UserID.
func (r *MeterRepository) Update(ctx context.Context, m *models.Meter) error {
	const query = `
		UPDATE meters
		SET location_id = $3, meter_type_id = $4, name = $5, serial_number = $6, description = $7,
		    is_active = $8, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		  AND ($3::uuid IS NULL OR EXISTS (SELECT 1 FROM locations WHERE id = $3 AND user_id = $2))
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		m.ID,
		m.UserID,
		m.LocationID,
		m.MeterTypeID,
		m.Name,
		m.SerialNumber,
		m.Description,
		m.IsActive,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a meter and, by cascade, its readings.
func (r *MeterRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return execOne(ctx, r.db, `DELETE FROM meters WHERE id = $1 AND user_id = $2`, id, userID)
}
