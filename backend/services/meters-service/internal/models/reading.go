package models

import (
	"time"

	"github.com/google/uuid"
)

// Reading is one totalizer value recorded for a meter.
type Reading struct {
	ID          uuid.UUID `db:"id" json:"id"`
	MeterID     uuid.UUID `db:"meter_id" json:"meter_id"`
	ReadingDate time.Time `db:"reading_date" json:"reading_date"`
	Value       float64   `db:"value" json:"value"`
	Notes       *string   `db:"notes" json:"notes"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ReadingWithMeter is a reading joined with its meter and the meter's type.
type ReadingWithMeter struct {
	Reading
	MeterName string `json:"meter_name"`
	TypeName  string `json:"meter_type"`
	Unit      string `json:"unit"`
}
