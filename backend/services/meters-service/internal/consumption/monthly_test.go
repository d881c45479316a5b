package consumption

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyKeepsLastReadingOfMonth(t *testing.T) {
	rs := readings(t,
		"2024-01-03", 100,
		"2024-01-28", 120,
		"2024-02-10", 130,
		"2024-02-26", 160,
		"2024-04-02", 150,
	)

	got := Monthly(rs)

	assert.Equal(t, []MonthlyBucket{
		{Month: "2024-02", Consumption: 40},
		{Month: "2024-04", Consumption: -10, NetProducer: true},
	}, got)
}

func TestMonthlyIdempotentUnderShuffle(t *testing.T) {
	rs := readings(t,
		"2023-11-30", 10,
		"2023-12-01", 11,
		"2023-12-31", 19,
		"2024-01-15", 25,
		"2024-01-16", 27,
		"2024-03-01", 33,
	)
	want := Monthly(rs)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append(rs[:0:0], rs...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Monthly(shuffled))
	}
}

func TestMonthlyCrossesYearInKeyOrder(t *testing.T) {
	got := Monthly(readings(t, "2024-01-10", 30, "2023-12-10", 10, "2023-09-10", 5))
	require.Len(t, got, 2)
	assert.Equal(t, "2023-12", got[0].Month)
	assert.Equal(t, 5.0, got[0].Consumption)
	assert.Equal(t, "2024-01", got[1].Month)
	assert.Equal(t, 20.0, got[1].Consumption)
}

func TestMonthlyNeedsTwoMonths(t *testing.T) {
	assert.Empty(t, Monthly(nil))
	assert.Empty(t, Monthly(readings(t, "2024-01-01", 1, "2024-01-31", 9)))
}

func TestMonthEnds(t *testing.T) {
	ends := MonthEnds(readings(t, "2024-05-20", 7, "2024-05-02", 3, "2024-06-01", 9))
	require.Len(t, ends, 2)
	assert.Equal(t, "2024-05", ends[0].Month)
	assert.Equal(t, 7.0, ends[0].Reading.Value)
	assert.Equal(t, 9.0, ends[1].Reading.Value)
}
