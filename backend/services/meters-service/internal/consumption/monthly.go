package consumption

import (
	"slices"
	"strings"

	"meterbook/backend/services/meters-service/internal/models"
)

// MonthlyBucket is the signed consumption of one calendar month.
type MonthlyBucket struct {
	Month       string  `json:"month"`
	Consumption float64 `json:"consumption"`
	// NetProducer marks a negative month, e.g. solar export exceeding usage.
	NetProducer bool `json:"net_producer"`
	// Placeholder is set on months inserted by CompleteMonthly ("no change").
	Placeholder bool `json:"placeholder,omitempty"`
}

// MonthEnd is the reading kept as a month's representative value.
type MonthEnd struct {
	Month   string         `json:"month"`
	Reading models.Reading `json:"reading"`
}

// MonthEnds keeps the latest reading of every month present, in month order.
func MonthEnds(readings []models.Reading) []MonthEnd {
	sorted := sortedAscending(readings)
	out := make([]MonthEnd, 0)
	for _, r := range sorted {
		key := MonthKey(r.ReadingDate)
		if n := len(out); n > 0 && out[n-1].Month == key {
			out[n-1].Reading = r
			continue
		}
		out = append(out, MonthEnd{Month: key, Reading: r})
	}
	return out
}

// Monthly returns one bucket per populated month after the first, holding the
// delta between that month's last reading and the previous populated month's.
// Negative deltas are kept as is.
func Monthly(readings []models.Reading) []MonthlyBucket {
	ends := MonthEnds(readings)
	if len(ends) < 2 {
		return []MonthlyBucket{}
	}
	out := make([]MonthlyBucket, 0, len(ends)-1)
	for i := 1; i < len(ends); i++ {
		d := delta(ends[i-1].Reading.Value, ends[i].Reading.Value)
		out = append(out, MonthlyBucket{
			Month:       ends[i].Month,
			Consumption: d,
			NetProducer: d < 0,
		})
	}
	return out
}

func sortBuckets(buckets []MonthlyBucket) []MonthlyBucket {
	out := slices.Clone(buckets)
	slices.SortStableFunc(out, func(a, b MonthlyBucket) int {
		return strings.Compare(a.Month, b.Month)
	})
	return out
}
