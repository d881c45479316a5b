package consumption

import (
	"slices"

	"meterbook/backend/services/meters-service/internal/models"
)

// HistoryEntry is one row of a meter's reading table, newest first.
type HistoryEntry struct {
	Reading models.Reading `json:"reading"`
	// Consumption since the previous reading, nil when not positive or when this is the oldest reading.
	Consumption *float64 `json:"consumption"`
	// DaysSincePrevious is nil for the oldest reading.
	DaysSincePrevious *int `json:"days_since_previous"`
}

// History lists readings newest first, each with the delta and day gap to the
// reading before it.
func History(readings []models.Reading) []HistoryEntry {
	sorted := sortedAscending(readings)
	out := make([]HistoryEntry, len(sorted))
	for i, r := range sorted {
		entry := HistoryEntry{Reading: r}
		if i > 0 {
			prev := sorted[i-1]
			if d := delta(prev.Value, r.Value); d > 0 {
				entry.Consumption = &d
			}
			days := wholeDays(prev.ReadingDate, r.ReadingDate)
			entry.DaysSincePrevious = &days
		}
		out[i] = entry
	}
	slices.Reverse(out)
	return out
}

// Latest returns the signed delta and day gap between the two most recent readings.
// ok is false when fewer than two readings exist.
func Latest(readings []models.Reading) (consumption float64, days int, ok bool) {
	if len(readings) < 2 {
		return 0, 0, false
	}
	sorted := sortedAscending(readings)
	prev, cur := sorted[len(sorted)-2], sorted[len(sorted)-1]
	return delta(prev.Value, cur.Value), wholeDays(prev.ReadingDate, cur.ReadingDate), true
}
