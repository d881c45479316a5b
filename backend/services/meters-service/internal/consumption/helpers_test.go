package consumption

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"meterbook/backend/services/meters-service/internal/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func reading(t *testing.T, date string, value float64) models.Reading {
	t.Helper()
	return models.Reading{ID: uuid.New(), ReadingDate: day(t, date), Value: value}
}

func readings(t *testing.T, pairs ...interface{}) []models.Reading {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatalf("readings needs date/value pairs")
	}
	out := make([]models.Reading, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		date := pairs[i].(string)
		var value float64
		switch v := pairs[i+1].(type) {
		case int:
			value = float64(v)
		case float64:
			value = v
		default:
			t.Fatalf("unsupported value %T", v)
		}
		out = append(out, reading(t, date, value))
	}
	return out
}
