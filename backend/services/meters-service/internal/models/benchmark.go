package models

import "github.com/google/uuid"

// Benchmark is a reference annual consumption band for a household shape.
type Benchmark struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	MeterTypeID        uuid.UUID `db:"meter_type_id" json:"meter_type_id"`
	PropertyType       string    `db:"property_type" json:"property_type"`
	PeopleMin          int       `db:"people_min" json:"people_min"`
	PeopleMax          int       `db:"people_max" json:"people_max"`
	SizeMinM2          float64   `db:"size_min_m2" json:"size_min_m2"`
	SizeMaxM2          float64   `db:"size_max_m2" json:"size_max_m2"`
	LowConsumption     float64   `db:"low_consumption" json:"low_consumption"`
	AverageConsumption float64   `db:"average_consumption" json:"average_consumption"`
	HighConsumption    float64   `db:"high_consumption" json:"high_consumption"`
}
