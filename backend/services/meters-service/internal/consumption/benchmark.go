package consumption

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// MatchBenchmark picks the reference band for a meter type and household.
//
// A row matches when its property type equals the profile's or is "all", and the
// people count and floor area fall inside its inclusive ranges. Profiles without
// people count or floor area match nothing. Among several matches the narrowest
// people range wins, then the narrowest size range, then an exact property type
// over "all", then the smallest id.
func MatchBenchmark(table []models.Benchmark, meterTypeID uuid.UUID, profile *models.HouseholdProfile) (models.Benchmark, bool) {
	if profile == nil || profile.NumberOfPeople == nil || profile.HouseSizeM2 == nil {
		return models.Benchmark{}, false
	}
	people, size := *profile.NumberOfPeople, *profile.HouseSizeM2
	property := ""
	if profile.PropertyType != nil {
		property = strings.ToLower(strings.TrimSpace(*profile.PropertyType))
	}

	candidates := make([]models.Benchmark, 0, len(table))
	for _, b := range table {
		if b.MeterTypeID != meterTypeID {
			continue
		}
		if b.PropertyType != models.PropertyAny && (property == "" || b.PropertyType != property) {
			continue
		}
		if people < b.PeopleMin || people > b.PeopleMax {
			continue
		}
		if size < b.SizeMinM2 || size > b.SizeMaxM2 {
			continue
		}
		candidates = append(candidates, b)
	}
	if len(candidates) == 0 {
		return models.Benchmark{}, false
	}
	return slices.MinFunc(candidates, compareSpecificity), true
}

func compareSpecificity(a, b models.Benchmark) int {
	if c := (a.PeopleMax - a.PeopleMin) - (b.PeopleMax - b.PeopleMin); c != 0 {
		return c
	}
	if wa, wb := a.SizeMaxM2-a.SizeMinM2, b.SizeMaxM2-b.SizeMinM2; wa != wb {
		if wa < wb {
			return -1
		}
		return 1
	}
	if ea, eb := a.PropertyType != models.PropertyAny, b.PropertyType != models.PropertyAny; ea != eb {
		if ea {
			return -1
		}
		return 1
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
