package consumption

import (
	"time"

	"meterbook/backend/services/meters-service/internal/models"
)

// Season is a meteorological season of the northern hemisphere.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Autumn Season = "autumn"
	Winter Season = "winter"
)

// SeasonBand is a chart background interval. Start and End are inclusive and use
// YYYY-MM-DD for date series or YYYY-MM for monthly series.
type SeasonBand struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Season Season `json:"season"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

type seasonDef struct {
	season     Season
	label      string
	color      string
	startMonth time.Month
}

// Chronological within a year; winter starts in December and ends in February of the next year.
var seasonTable = []seasonDef{
	{season: Spring, label: "Printemps", color: "#dcfce7", startMonth: time.March},
	{season: Summer, label: "Été", color: "#fef3c7", startMonth: time.June},
	{season: Autumn, label: "Automne", color: "#fed7aa", startMonth: time.September},
	{season: Winter, label: "Hiver", color: "#dbeafe", startMonth: time.December},
}

type seasonSpan struct {
	def   seasonDef
	start time.Time // first day
	end   time.Time // last day
}

// overlapping lists the season spans that intersect [from, to] (whole days).
// Spans start and end on month boundaries, so a day overlap is also a month overlap:
// the date and month variants below see the same seasons.
func overlapping(from, to time.Time) []seasonSpan {
	if to.Before(from) {
		from, to = to, from
	}
	out := make([]seasonSpan, 0)
	for year := from.Year() - 1; year <= to.Year(); year++ {
		for _, def := range seasonTable {
			start := time.Date(year, def.startMonth, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, 3, -1)
			if start.After(to) || end.Before(from) {
				continue
			}
			out = append(out, seasonSpan{def: def, start: start, end: end})
		}
	}
	return out
}

// SeasonBands returns the season bands overlapping the days from..to, clipped to them.
func SeasonBands(from, to time.Time) []SeasonBand {
	from, to = dayStart(from), dayStart(to)
	if to.Before(from) {
		from, to = to, from
	}
	spans := overlapping(from, to)
	out := make([]SeasonBand, 0, len(spans))
	for _, s := range spans {
		start, end := s.start, s.end
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		out = append(out, band(s.def, start.Format(dayLayout), end.Format(dayLayout)))
	}
	return out
}

// MonthlySeasonBands is SeasonBands for YYYY-MM keys: bands overlapping the months
// fromKey..toKey, clipped to them.
func MonthlySeasonBands(fromKey, toKey string) ([]SeasonBand, error) {
	from, err := ParseMonthKey(fromKey)
	if err != nil {
		return nil, err
	}
	to, err := ParseMonthKey(toKey)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		from, to = to, from
	}
	spans := overlapping(from, to.AddDate(0, 1, -1))
	out := make([]SeasonBand, 0, len(spans))
	for _, s := range spans {
		start, end := monthStart(s.start), monthStart(s.end)
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		out = append(out, band(s.def, MonthKey(start), MonthKey(end)))
	}
	return out, nil
}

// ReadingSeasonBands derives the range from the readings' dates.
func ReadingSeasonBands(readings []models.Reading) []SeasonBand {
	if len(readings) == 0 {
		return []SeasonBand{}
	}
	sorted := sortedAscending(readings)
	return SeasonBands(sorted[0].ReadingDate, sorted[len(sorted)-1].ReadingDate)
}

// BucketSeasonBands derives the range from the buckets' month keys.
func BucketSeasonBands(buckets []MonthlyBucket) []SeasonBand {
	sorted := sortBuckets(buckets)
	for len(sorted) > 0 {
		if _, err := ParseMonthKey(sorted[0].Month); err == nil {
			break
		}
		sorted = sorted[1:]
	}
	if len(sorted) == 0 {
		return []SeasonBand{}
	}
	bands, err := MonthlySeasonBands(sorted[0].Month, sorted[len(sorted)-1].Month)
	if err != nil {
		return []SeasonBand{}
	}
	return bands
}

func band(def seasonDef, start, end string) SeasonBand {
	return SeasonBand{Start: start, End: end, Season: def.season, Label: def.label, Color: def.color}
}
