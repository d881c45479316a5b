package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meterbook/backend/services/meters-service/internal/consumption"
	"meterbook/backend/services/meters-service/internal/models"
)

type analyticsFixture struct {
	userID     uuid.UUID
	meterID    uuid.UUID
	typeID     uuid.UUID
	meters     *fakeMeters
	readings   *fakeReadings
	household  *fakeHousehold
	benchmarks *fakeBenchmarks
	svc        *AnalyticsService
}

func newAnalyticsFixture() *analyticsFixture {
	f := &analyticsFixture{userID: uuid.New(), meterID: uuid.New(), typeID: uuid.New()}
	f.meters = &fakeMeters{meters: []models.MeterDetail{{
		Meter:     models.Meter{ID: f.meterID, UserID: f.userID, MeterTypeID: f.typeID, Name: "Électricité maison", IsActive: true},
		MeterType: models.MeterType{ID: f.typeID, Name: "Électricité", Unit: "kWh"},
	}}}
	f.readings = &fakeReadings{
		owner: map[uuid.UUID]uuid.UUID{f.meterID: f.userID},
		byMeter: map[uuid.UUID][]models.Reading{f.meterID: {
			{ID: uuid.New(), MeterID: f.meterID, ReadingDate: day(2022, time.January, 15), Value: 100},
			{ID: uuid.New(), MeterID: f.meterID, ReadingDate: day(2023, time.February, 10), Value: 200},
			{ID: uuid.New(), MeterID: f.meterID, ReadingDate: day(2024, time.March, 5), Value: 260},
			{ID: uuid.New(), MeterID: f.meterID, ReadingDate: day(2024, time.April, 5), Value: 300},
		}},
	}
	f.household = &fakeHousehold{}
	f.benchmarks = &fakeBenchmarks{tables: map[uuid.UUID][]models.Benchmark{f.typeID: {
		{ID: uuid.New(), MeterTypeID: f.typeID, PropertyType: models.PropertyAny, PeopleMin: 1, PeopleMax: 6, SizeMinM2: 0, SizeMaxM2: 500, AverageConsumption: 3500},
		{ID: uuid.New(), MeterTypeID: f.typeID, PropertyType: models.PropertyHouse, PeopleMin: 3, PeopleMax: 3, SizeMinM2: 80, SizeMaxM2: 120, AverageConsumption: 4200},
	}}}
	reference := NewReferenceService(&fakeMeterTypes{}, f.benchmarks, nil, nil, zap.NewNop())
	f.svc = NewAnalyticsService(f.meters, f.readings, f.household, reference, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestMeterAnalyticsOneYear(t *testing.T) {
	f := newAnalyticsFixture()

	got, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodOneYear)
	require.NoError(t, err)

	assert.Equal(t, f.meterID, got.Meter.ID)
	assert.Equal(t, consumption.PeriodOneYear, got.Period)
	assert.Equal(t, 4, got.Stats.TotalReadings)
	assert.InDelta(t, 200, got.Stats.TotalConsumption, 1e-9)
	assert.Len(t, got.History, 4)

	require.Len(t, got.Monthly, 2)
	assert.Equal(t, "2024-03", got.Monthly[0].Month)
	assert.InDelta(t, 60, got.Monthly[0].Consumption, 1e-9)
	assert.Equal(t, "2024-04", got.Monthly[1].Month)
	assert.Len(t, got.MonthlyTimeline, 2)
	assert.Len(t, got.ReadingTimeline, 2)
	assert.NotEmpty(t, got.SeasonBands)
	assert.NotEmpty(t, got.MonthlySeasonBands)

	assert.False(t, got.HasHouseholdProfile)
	assert.Nil(t, got.Benchmark)
	assert.Equal(t, 0, f.benchmarks.calls)
	assert.Equal(t, []int{0}, f.readings.limits)
}

func TestMeterAnalyticsAllKeepsEveryMonth(t *testing.T) {
	f := newAnalyticsFixture()

	got, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodAll)
	require.NoError(t, err)

	assert.Len(t, got.Monthly, 3)
	assert.Equal(t, "2023-02", got.Monthly[0].Month)
	assert.Len(t, got.MonthlyTimeline, consumption.MonthSpan(day(2023, time.February, 1), day(2024, time.April, 1))+1)
	assert.Len(t, got.ReadingTimeline, consumption.MonthSpan(day(2022, time.January, 1), day(2024, time.April, 1))+1)
}

func TestMeterAnalyticsMatchesBenchmark(t *testing.T) {
	f := newAnalyticsFixture()
	f.household.profile = &models.HouseholdProfile{
		ID:             uuid.New(),
		UserID:         f.userID,
		NumberOfPeople: ptr(3),
		PropertyType:   ptr(models.PropertyHouse),
		HouseSizeM2:    ptr(100.0),
	}

	got, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodAll)
	require.NoError(t, err)

	assert.True(t, got.HasHouseholdProfile)
	require.NotNil(t, got.Benchmark)
	assert.Equal(t, 4200.0, got.Benchmark.AverageConsumption)
}

func TestMeterAnalyticsBenchmarkFailureIsNotFatal(t *testing.T) {
	f := newAnalyticsFixture()
	f.household.profile = &models.HouseholdProfile{UserID: f.userID, NumberOfPeople: ptr(3), HouseSizeM2: ptr(100.0)}
	f.benchmarks.err = errors.New("db down")

	got, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodAll)
	require.NoError(t, err)
	assert.True(t, got.HasHouseholdProfile)
	assert.Nil(t, got.Benchmark)
}

func TestMeterAnalyticsForeignMeter(t *testing.T) {
	f := newAnalyticsFixture()

	_, err := f.svc.MeterAnalytics(context.Background(), uuid.New(), f.meterID, consumption.PeriodAll)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMeterAnalyticsStorageError(t *testing.T) {
	f := newAnalyticsFixture()
	boom := errors.New("db down")
	f.readings.err = boom

	_, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodAll)
	assert.ErrorIs(t, err, boom)
}

func TestMeterAnalyticsNoReadings(t *testing.T) {
	f := newAnalyticsFixture()
	f.readings.byMeter = map[uuid.UUID][]models.Reading{}

	got, err := f.svc.MeterAnalytics(context.Background(), f.userID, f.meterID, consumption.PeriodOneYear)
	require.NoError(t, err)
	assert.Zero(t, got.Stats.TotalReadings)
	assert.Empty(t, got.Monthly)
	assert.Empty(t, got.ReadingTimeline)
	assert.Empty(t, got.SeasonBands)
}
