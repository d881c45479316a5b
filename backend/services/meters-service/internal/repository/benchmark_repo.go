package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// BenchmarkRepository reads the consumption_benchmarks reference table.
type BenchmarkRepository struct {
	db *sql.DB
}

// NewBenchmarkRepository returns repository.
func NewBenchmarkRepository(db *sql.DB) *BenchmarkRepository {
	return &BenchmarkRepository{db: db}
}

// ListByMeterType returns every benchmark row for one meter type. Matching against a
// household happens in memory.
func (r *BenchmarkRepository) ListByMeterType(ctx context.Context, meterTypeID uuid.UUID) ([]models.Benchmark, error) {
	const query = `
		SELECT id, meter_type_id, property_type, people_min, people_max, size_min_m2, size_max_m2,
		       low_consumption, average_consumption, high_consumption
		FROM consumption_benchmarks
		WHERE meter_type_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, meterTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := make([]models.Benchmark, 0)
	for rows.Next() {
		var b models.Benchmark
		if err := rows.Scan(
			&b.ID,
			&b.MeterTypeID,
			&b.PropertyType,
			&b.PeopleMin,
			&b.PeopleMax,
			&b.SizeMinM2,
			&b.SizeMaxM2,
			&b.LowConsumption,
			&b.AverageConsumption,
			&b.HighConsumption,
		); err != nil {
			return nil, err
		}
		table = append(table, b)
	}
	return table, rows.Err()
}
