package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meterbook/backend/services/meters-service/internal/consumption"
	"meterbook/backend/services/meters-service/internal/models"
)

const (
	defaultMeterColor   = "#3b82f6"
	dashboardFetchLimit = 8
)

// MeterSummary is the latest consumption of one active meter.
type MeterSummary struct {
	MeterID        uuid.UUID  `json:"meter_id"`
	MeterName      string     `json:"meter_name"`
	MeterType      string     `json:"meter_type"`
	MeterTypeColor string     `json:"meter_type_color"`
	Unit           string     `json:"unit"`
	LatestValue    *float64   `json:"latest_value"`
	LatestDate     *time.Time `json:"latest_date"`
	PreviousValue  *float64   `json:"previous_value"`
	PreviousDate   *time.Time `json:"previous_date"`
	Consumption    *float64   `json:"consumption"`
	DaysDiff       *int       `json:"days_diff"`
	NetProducer    bool       `json:"net_producer"`
}

// Dashboard is the home screen summary of a user.
type Dashboard struct {
	ActiveMeters int            `json:"active_meters"`
	Locations    int            `json:"locations"`
	Meters       []MeterSummary `json:"meters"`
}

// DashboardService assembles the home screen.
type DashboardService struct {
	meters    MeterStore
	locations LocationStore
	readings  ReadingStore
	logger    *zap.Logger
}

// NewDashboardService builds service.
func NewDashboardService(meters MeterStore, locations LocationStore, readings ReadingStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{meters: meters, locations: locations, readings: readings, logger: logger}
}

// Dashboard returns counts and the latest consumption of every active meter.
func (s *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	var (
		dash   Dashboard
		active []models.MeterDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dash.ActiveMeters, err = s.meters.CountActive(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		dash.Locations, err = s.locations.Count(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = s.meters.ListActive(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash.Meters = make([]MeterSummary, len(active))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(dashboardFetchLimit)
	for i, m := range active {
		g.Go(func() error {
			latest, err := s.readings.ListByMeter(gctx, userID, m.ID, 2)
			if err != nil {
				return err
			}
			dash.Meters[i] = summarize(m, latest)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}

// summarize expects latest newest first, as ListByMeter returns it.
func summarize(m models.MeterDetail, latest []models.Reading) MeterSummary {
	sum := MeterSummary{
		MeterID:        m.ID,
		MeterName:      m.Name,
		MeterType:      m.MeterType.Name,
		MeterTypeColor: defaultMeterColor,
		Unit:           m.MeterType.Unit,
	}
	if m.MeterType.Color != nil && *m.MeterType.Color != "" {
		sum.MeterTypeColor = *m.MeterType.Color
	}
	if len(latest) > 0 {
		sum.LatestValue = &latest[0].Value
		sum.LatestDate = &latest[0].ReadingDate
	}
	if len(latest) > 1 {
		sum.PreviousValue = &latest[1].Value
		sum.PreviousDate = &latest[1].ReadingDate
	}
	if c, days, ok := consumption.Latest(latest); ok {
		sum.Consumption = &c
		sum.DaysDiff = &days
		sum.NetProducer = c < 0
	}
	return sum
}
