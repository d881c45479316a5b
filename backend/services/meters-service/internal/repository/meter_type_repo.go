package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// MeterTypeRepository reads the static meter_types table.
type MeterTypeRepository struct {
	db *sql.DB
}

// NewMeterTypeRepository returns repository.
func NewMeterTypeRepository(db *sql.DB) *MeterTypeRepository {
	return &MeterTypeRepository{db: db}
}

// List returns every meter type ordered by name.
func (r *MeterTypeRepository) List(ctx context.Context) ([]models.MeterType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, unit, icon, color FROM meter_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]models.MeterType, 0)
	for rows.Next() {
		var mt models.MeterType
		if err := rows.Scan(&mt.ID, &mt.Name, &mt.Unit, &mt.Icon, &mt.Color); err != nil {
			return nil, err
		}
		types = append(types, mt)
	}
	return types, rows.Err()
}

// Exists reports whether id names a meter type.
func (r *MeterTypeRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM meter_types WHERE id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}
