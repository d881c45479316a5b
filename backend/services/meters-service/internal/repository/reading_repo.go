package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// ReadingRepository handles readings. Every query is scoped to the owner of the meter.
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository returns repository.
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

const readingColumns = `r.id, r.meter_id, r.reading_date, r.value, r.notes, r.photo_url, r.created_at, r.updated_at`

func scanReading(row scanner, extra ...any) (models.Reading, error) {
	var rd models.Reading
	dest := append([]any{
		&rd.ID,
		&rd.MeterID,
		&rd.ReadingDate,
		&rd.Value,
		&rd.Notes,
		&rd.PhotoURL,
		&rd.CreatedAt,
		&rd.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)
	return rd, err
}

// ListByMeter returns every reading of one meter, newest first. Use limit <= 0 for no limit.
func (r *ReadingRepository) ListByMeter(ctx context.Context, userID, meterID uuid.UUID, limit int) ([]models.Reading, error) {
	query := `
		SELECT ` + readingColumns + `
		FROM readings r
		JOIN meters m ON m.id = r.meter_id
		WHERE r.meter_id = $1 AND m.user_id = $2
		ORDER BY r.reading_date DESC, r.value DESC, r.id DESC
	`
	args := []any{meterID, userID}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make([]models.Reading, 0)
	for rows.Next() {
		rd, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		readings = append(readings, rd)
	}
	return readings, rows.Err()
}

// ListWithMeter returns the user's readings joined with meter name and unit,
// newest first, optionally restricted to one meter.
func (r *ReadingRepository) ListWithMeter(ctx context.Context, userID uuid.UUID, meterID *uuid.UUID) ([]models.ReadingWithMeter, error) {
	const query = `
		SELECT ` + readingColumns + `, m.name, t.name, t.unit
		FROM readings r
		JOIN meters m ON m.id = r.meter_id
		JOIN meter_types t ON t.id = m.meter_type_id
		WHERE m.user_id = $1 AND ($2::uuid IS NULL OR r.meter_id = $2)
		ORDER BY r.reading_date DESC, r.value DESC, r.id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, meterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ReadingWithMeter, 0)
	for rows.Next() {
		var rw models.ReadingWithMeter
		rd, err := scanReading(rows, &rw.MeterName, &rw.TypeName, &rw.Unit)
		if err != nil {
			return nil, err
		}
		rw.Reading = rd
		out = append(out, rw)
	}
	return out, rows.Err()
}

// Create inserts a reading on a meter owned by userID; ErrNotFound otherwise.
func (r *ReadingRepository) Create(ctx context.Context, userID uuid.UUID, rd *models.Reading) error {
	const query = `
		INSERT INTO readings (meter_id, reading_date, value, notes, photo_url, created_at, updated_at)
		SELECT m.id, $3::timestamptz, $4::double precision, $5::text, $6::text, NOW(), NOW()
		FROM meters m
		WHERE m.id = $1 AND m.user_id = $2
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, rd.MeterID, userID, rd.ReadingDate, rd.Value, rd.Notes, rd.PhotoURL).
		Scan(&rd.ID, &rd.CreatedAt, &rd.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Update rewrites a reading. Both its current and its target meter must belong to userID.
func (r *ReadingRepository) Update(ctx context.Context, userID uuid.UUID, rd *models.Reading) error {
	const query = `
		UPDATE readings r
		SET meter_id = $3, reading_date = $4, value = $5, notes = $6, photo_url = $7, updated_at = NOW()
		FROM meters cur, meters target
		WHERE r.id = $1
		  AND cur.id = r.meter_id AND cur.user_id = $2
		  AND target.id = $3 AND target.user_id = $2
		RETURNING r.created_at, r.updated_at
	`
	err := r.db.QueryRowContext(ctx, query, rd.ID, userID, rd.MeterID, rd.ReadingDate, rd.Value, rd.Notes, rd.PhotoURL).
		Scan(&rd.CreatedAt, &rd.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete removes a reading of a meter owned by userID.
func (r *ReadingRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `
		DELETE FROM readings r
		USING meters m
		WHERE r.id = $1 AND m.id = r.meter_id AND m.user_id = $2
	`
	return execOne(ctx, r.db, query, id, userID)
}
