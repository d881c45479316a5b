package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"meterbook/backend/services/meters-service/internal/consumption"
	"meterbook/backend/services/meters-service/internal/models"
)

// MeterAnalytics is everything the meter detail screen shows.
//
// Stats and History cover every reading. The series, timelines and season bands
// are restricted to Period.
type MeterAnalytics struct {
	Meter               models.MeterDetail          `json:"meter"`
	Period              consumption.Period          `json:"period"`
	Stats               consumption.Stats           `json:"stats"`
	History             []consumption.HistoryEntry  `json:"history"`
	Monthly             []consumption.MonthlyBucket `json:"monthly"`
	MonthlyTimeline     []consumption.MonthlyBucket `json:"monthly_timeline"`
	ReadingTimeline     []consumption.TimelinePoint `json:"reading_timeline"`
	SeasonBands         []consumption.SeasonBand    `json:"season_bands"`
	MonthlySeasonBands  []consumption.SeasonBand    `json:"monthly_season_bands"`
	Benchmark           *models.Benchmark           `json:"benchmark"`
	HasHouseholdProfile bool                        `json:"has_household_profile"`
}

// AnalyticsService loads a meter's data and runs the consumption computations.
type AnalyticsService struct {
	meters    MeterStore
	readings  ReadingStore
	household HouseholdStore
	reference *ReferenceService
	logger    *zap.Logger
	now       func() time.Time
}

// NewAnalyticsService builds service.
func NewAnalyticsService(
	meters MeterStore,
	readings ReadingStore,
	household HouseholdStore,
	reference *ReferenceService,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		meters:    meters,
		readings:  readings,
		household: household,
		reference: reference,
		logger:    logger,
		now:       time.Now,
	}
}

// MeterAnalytics computes the analytics of one meter owned by userID.
func (s *AnalyticsService) MeterAnalytics(ctx context.Context, userID, meterID uuid.UUID, period consumption.Period) (*MeterAnalytics, error) {
	var (
		meter    *models.MeterDetail
		readings []models.Reading
		profile  *models.HouseholdProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		meter, err = s.meters.Get(gctx, userID, meterID)
		return err
	})
	g.Go(func() error {
		var err error
		readings, err = s.readings.ListByMeter(gctx, userID, meterID, 0)
		return err
	})
	g.Go(func() error {
		p, err := s.household.GetByUser(gctx, userID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		profile = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	monthly := consumption.FilterMonthly(consumption.Monthly(readings), period, now)
	windowed := consumption.FilterReadings(readings, period, now)

	result := &MeterAnalytics{
		Meter:               *meter,
		Period:              period,
		Stats:               consumption.Calculate(readings),
		History:             consumption.History(readings),
		Monthly:             monthly,
		MonthlyTimeline:     consumption.CompleteMonthly(monthly),
		ReadingTimeline:     consumption.CompleteReadings(windowed),
		SeasonBands:         consumption.ReadingSeasonBands(windowed),
		MonthlySeasonBands:  consumption.BucketSeasonBands(monthly),
		HasHouseholdProfile: profile != nil,
	}

	if profile != nil {
		table, err := s.reference.Benchmarks(ctx, meter.MeterTypeID)
		if err != nil {
			// The benchmark is an optional overlay; the screen still renders without it.
			s.logger.Warn("failed to load benchmarks", zap.Error(err), zap.String("meter_id", meterID.String()))
		} else if b, ok := consumption.MatchBenchmark(table, meter.MeterTypeID, profile); ok {
			result.Benchmark = &b
		}
	}
	return result, nil
}
