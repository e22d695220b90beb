package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leagueStart = "2024-07-26T16:00:00Z"
	leagueEnd   = "2024-12-02T16:00:00Z"
)

func TestCalculateActive(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

	info := Calculate(leagueStart, leagueEnd, now)
	require.NotNil(t, info)

	assert.True(t, info.IsActive)
	assert.Equal(t, "80d 20h 0m", info.ElapsedDuration)
	assert.Equal(t, "48d 4h 0m", info.RemainingDuration)
	assert.Equal(t, "129d 0h 0m", info.TotalDuration)
}

func TestCalculateTotalIndependentOfNow(t *testing.T) {
	t.Parallel()

	nows := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, now := range nows {
		info := Calculate(leagueStart, leagueEnd, now)
		require.NotNil(t, info)
		assert.Equal(t, "129d 0h 0m", info.TotalDuration)
	}
}

func TestCalculateBoundaries(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 7, 26, 16, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 2, 16, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		now        time.Time
		wantActive bool
	}{
		{name: "exactly at start", now: start, wantActive: true},
		{name: "exactly at end", now: end, wantActive: true},
		{name: "one second before start", now: start.Add(-time.Second), wantActive: false},
		{name: "one second after end", now: end.Add(time.Second), wantActive: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info := Between(start, end, tc.now)
			require.NotNil(t, info)
			assert.Equal(t, tc.wantActive, info.IsActive)

			if !tc.wantActive {
				assert.Empty(t, info.ElapsedDuration)
				assert.Empty(t, info.RemainingDuration)
			}
		})
	}
}

func TestCalculateMalformed(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, Calculate("not a date", leagueEnd, now))
	assert.Nil(t, Calculate(leagueStart, "", now))
	assert.Nil(t, Calculate(leagueEnd, leagueStart, now), "end before start")
	assert.Nil(t, Calculate(leagueStart, leagueStart, now), "end equal to start")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0d 0h 5m", Format(5*time.Minute))
	assert.Equal(t, "0d 0h 0m", Format(59*time.Second))
	assert.Equal(t, "1d 0h 0m", Format(24*time.Hour))
	assert.Equal(t, "2d 23h 59m", Format(71*time.Hour+59*time.Minute+59*time.Second))
	assert.Equal(t, "0d 0h 0m", Format(-time.Hour))
}

func TestStartsIn(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 7, 25, 16, 0, 0, 0, time.UTC)
	start := time.Date(2024, 7, 26, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "1d 2h 30m", StartsIn(start, now))
	assert.Equal(t, "", StartsIn(now, now))
	assert.Equal(t, "", StartsIn(now.Add(-time.Hour), now))
}
