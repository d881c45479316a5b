package models

import (
	"time"

	"github.com/google/uuid"
)

// Meter is a physical or virtual counter owned by a user.
type Meter struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UserID       uuid.UUID  `db:"user_id" json:"user_id"`
	LocationID   *uuid.UUID `db:"location_id" json:"location_id"`
	MeterTypeID  uuid.UUID  `db:"meter_type_id" json:"meter_type_id"`
	Name         string     `db:"name" json:"name"`
	SerialNumber *string    `db:"serial_number" json:"serial_number"`
	Description  *string    `db:"description" json:"description"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// MeterType is static reference data (Électricité, Eau, Gaz...).
type MeterType struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Unit  string    `db:"unit" json:"unit"`
	Icon  *string   `db:"icon" json:"icon"`
	Color *string   `db:"color" json:"color"`
}

// LocationRef is the short form of a location embedded in meter views.
type LocationRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// MeterDetail is a meter joined with exactly one type and at most one location.
type MeterDetail struct {
	Meter
	MeterType MeterType    `json:"meter_type"`
	Location  *LocationRef `json:"location"`
}
