package consumption

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"meterbook/backend/services/meters-service/internal/models"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

// compareReadings orders by date, then value, then id, so that the result does
// not depend on the order rows arrived in.
func compareReadings(a, b models.Reading) int {
	if c := a.ReadingDate.Compare(b.ReadingDate); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Value, b.Value); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

func sortedAscending(readings []models.Reading) []models.Reading {
	out := slices.Clone(readings)
	slices.SortStableFunc(out, compareReadings)
	return out
}

// delta returns cur - prev without binary float noise (130.1 - 100 is 30.1).
func delta(prev, cur float64) float64 {
	return decimal.NewFromFloat(cur).Sub(decimal.NewFromFloat(prev)).InexactFloat64()
}

func wholeDays(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// MonthKey returns the zero-padded YYYY-MM key of t in UTC.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// ParseMonthKey parses a YYYY-MM key into the first instant of that month (UTC).
func ParseMonthKey(key string) (time.Time, error) {
	return time.Parse(monthLayout, key)
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthSpan counts whole calendar months from a to b (0 when both are in the same month).
func MonthSpan(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
