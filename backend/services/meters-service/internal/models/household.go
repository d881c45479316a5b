package models

import (
	"time"

	"github.com/google/uuid"
)

// Property types accepted in household profiles and benchmarks.
const (
	PropertyHouse     = "house"
	PropertyApartment = "apartment"
	PropertyAny       = "all"
)

// HouseholdProfile holds the attributes used to look up consumption benchmarks.
// A user has at most one profile.
type HouseholdProfile struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	UserID             uuid.UUID `db:"user_id" json:"user_id"`
	NumberOfPeople     *int      `db:"number_of_people" json:"number_of_people"`
	PropertyType       *string   `db:"property_type" json:"property_type"`
	HouseSizeM2        *float64  `db:"house_size_m2" json:"house_size_m2"`
	PEBRating          *string   `db:"peb_rating" json:"peb_rating"`
	YearOfConstruction *int      `db:"year_of_construction" json:"year_of_construction"`
	HeatingType        *string   `db:"heating_type" json:"heating_type"`
	HasSolarPanels     bool      `db:"has_solar_panels" json:"has_solar_panels"`
	HasElectricCar     bool      `db:"has_electric_car" json:"has_electric_car"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
