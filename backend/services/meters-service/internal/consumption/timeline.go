package consumption

import (
	"time"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

// TimelinePoint is one month of a reading chart. Value and ReadingID are nil when
// no reading exists for the month ("no measurement").
type TimelinePoint struct {
	Month     string     `json:"month"`
	Date      time.Time  `json:"reading_date"`
	Value     *float64   `json:"value"`
	ReadingID *uuid.UUID `json:"reading_id,omitempty"`
}

// CompleteReadings spreads readings over every month from the first to the last
// one. A populated month shows its earliest reading; an empty month gets a
// placeholder dated on its first day.
func CompleteReadings(readings []models.Reading) []TimelinePoint {
	if len(readings) == 0 {
		return []TimelinePoint{}
	}
	sorted := sortedAscending(readings)

	earliest := make(map[string]models.Reading, len(sorted))
	for _, r := range sorted {
		key := MonthKey(r.ReadingDate)
		if _, ok := earliest[key]; !ok {
			earliest[key] = r
		}
	}

	first := monthStart(sorted[0].ReadingDate)
	last := monthStart(sorted[len(sorted)-1].ReadingDate)
	out := make([]TimelinePoint, 0, MonthSpan(first, last)+1)
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
		key := MonthKey(cur)
		r, ok := earliest[key]
		if !ok {
			out = append(out, TimelinePoint{Month: key, Date: cur})
			continue
		}
		value, id := r.Value, r.ID
		out = append(out, TimelinePoint{Month: key, Date: r.ReadingDate, Value: &value, ReadingID: &id})
	}
	return out
}

// CompleteMonthly fills the months missing between the first and last bucket with
// zero-consumption placeholders ("no change"). Buckets with malformed keys are dropped
// and the first bucket of a repeated month wins.
func CompleteMonthly(buckets []MonthlyBucket) []MonthlyBucket {
	byMonth := make(map[string]MonthlyBucket, len(buckets))
	valid := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		if _, err := ParseMonthKey(b.Month); err != nil {
			continue
		}
		if _, dup := byMonth[b.Month]; dup {
			continue
		}
		byMonth[b.Month] = b
		valid = append(valid, b)
	}
	if len(valid) == 0 {
		return []MonthlyBucket{}
	}
	valid = sortBuckets(valid)

	first, _ := ParseMonthKey(valid[0].Month)
	last, _ := ParseMonthKey(valid[len(valid)-1].Month)
	out := make([]MonthlyBucket, 0, MonthSpan(first, last)+1)
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 1, 0) {
		key := MonthKey(cur)
		if b, ok := byMonth[key]; ok {
			out = append(out, b)
			continue
		}
		out = append(out, MonthlyBucket{Month: key, Placeholder: true})
	}
	return out
}
