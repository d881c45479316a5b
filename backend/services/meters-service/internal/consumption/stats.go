package consumption

import (
	"github.com/shopspring/decimal"

	"meterbook/backend/services/meters-service/internal/models"
)

// Stats summarises the readings of one meter.
type Stats struct {
	TotalReadings      int             `json:"total_readings"`
	FirstReading       *models.Reading `json:"first_reading"`
	LastReading        *models.Reading `json:"last_reading"`
	TotalConsumption   float64         `json:"total_consumption"`
	AverageConsumption float64         `json:"average_consumption"`
	MinConsumption     float64         `json:"min_consumption"`
	MaxConsumption     float64         `json:"max_consumption"`
	DaysTracked        int             `json:"days_tracked"`
}

// Calculate computes Stats over readings in any order.
//
// Average, min and max only consider positive consecutive deltas: a drop in the
// totalizer (meter swap, typo) is skipped without stopping the scan. The total is
// last minus first and keeps its sign.
func Calculate(readings []models.Reading) Stats {
	stats := Stats{TotalReadings: len(readings)}
	if len(readings) == 0 {
		return stats
	}

	sorted := sortedAscending(readings)
	first, last := sorted[0], sorted[len(sorted)-1]
	stats.FirstReading = &first
	stats.LastReading = &last
	if len(sorted) == 1 {
		return stats
	}

	stats.TotalConsumption = delta(first.Value, last.Value)
	stats.DaysTracked = wholeDays(first.ReadingDate, last.ReadingDate)

	var (
		sum    = decimal.Zero
		count  int
		lo, hi float64
	)
	for i := 1; i < len(sorted); i++ {
		d := delta(sorted[i-1].Value, sorted[i].Value)
		if d <= 0 {
			continue
		}
		if count == 0 || d < lo {
			lo = d
		}
		if count == 0 || d > hi {
			hi = d
		}
		sum = sum.Add(decimal.NewFromFloat(d))
		count++
	}
	if count > 0 {
		stats.AverageConsumption = sum.Div(decimal.NewFromInt(int64(count))).InexactFloat64()
		stats.MinConsumption = lo
		stats.MaxConsumption = hi
	}
	return stats
}

// Consecutive returns the signed deltas between adjacent readings in date order.
func Consecutive(readings []models.Reading) []float64 {
	if len(readings) < 2 {
		return nil
	}
	sorted := sortedAscending(readings)
	out := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		out = append(out, delta(sorted[i-1].Value, sorted[i].Value))
	}
	return out
}
