package consumption

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"meterbook/backend/services/meters-service/internal/models"
)

// Period selects a trailing window of data.
type Period string

const (
	PeriodOneYear  Period = "1Y"
	PeriodTwoYears Period = "2Y"
	PeriodAll      Period = "ALL"
)

// ErrUnknownPeriod is returned by ParsePeriod for anything but 1Y, 2Y or ALL.
var ErrUnknownPeriod = errors.New("consumption: unknown period")

// ParsePeriod accepts 1Y, 2Y and ALL in any case. An empty string means ALL.
func ParsePeriod(raw string) (Period, error) {
	switch p := Period(strings.ToUpper(strings.TrimSpace(raw))); p {
	case "":
		return PeriodAll, nil
	case PeriodOneYear, PeriodTwoYears, PeriodAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, raw)
	}
}

func (p Period) years() int {
	switch p {
	case PeriodOneYear:
		return 1
	case PeriodTwoYears:
		return 2
	}
	return 0
}

// Cutoff returns the first day of now's month, N years back. ok is false for ALL.
func (p Period) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	n := p.years()
	if n == 0 {
		return time.Time{}, false
	}
	now = now.UTC()
	return time.Date(now.Year()-n, now.Month(), 1, 0, 0, 0, 0, time.UTC), true
}

// FilterReadings keeps readings dated at or after the period cutoff.
func FilterReadings(readings []models.Reading, p Period, now time.Time) []models.Reading {
	cutoff, ok := p.Cutoff(now)
	if !ok {
		return readings
	}
	out := make([]models.Reading, 0, len(readings))
	for _, r := range readings {
		if !r.ReadingDate.Before(cutoff) {
			out = append(out, r)
		}
	}
	return out
}

// FilterMonthly keeps buckets whose month is at or after the cutoff month.
func FilterMonthly(buckets []MonthlyBucket, p Period, now time.Time) []MonthlyBucket {
	cutoff, ok := p.Cutoff(now)
	if !ok {
		return buckets
	}
	key := MonthKey(cutoff)
	out := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Month >= key {
			out = append(out, b)
		}
	}
	return out
}
