package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// LocationRepository handles the locations table.
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository returns repository.
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = `id, user_id, name, address, created_at, updated_at`

func scanLocation(row scanner) (models.Location, error) {
	var l models.Location
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.Address, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

// List returns the user's locations ordered by name.
func (r *LocationRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+locationColumns+` FROM locations WHERE user_id = $1 ORDER BY name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]models.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

// Count returns how many locations the user has.
func (r *LocationRepository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// Create inserts a location and fills its generated fields.
func (r *LocationRepository) Create(ctx context.Context, l *models.Location) error {
	const query = `
		INSERT INTO locations (user_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, l.UserID, l.Name, l.Address).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update rewrites name and address of a location owned by l.UserID.
func (r *LocationRepository) Update(ctx context.Context, l *models.Location) error {
	const query = `
		UPDATE locations
		SET name = $3, address = $4, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, l.ID, l.UserID, l.Name, l.Address).Scan(&l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a location. Its meters keep existing without a location.
func (r *LocationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return execOne(ctx, r.db, `DELETE FROM locations WHERE id = $1 AND user_id = $2`, id, userID)
}

func execOne(ctx context.Context, db *sql.DB, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
