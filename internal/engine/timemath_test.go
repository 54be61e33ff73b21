package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
		wantErr bool
	}{
		{clock: "08:00", minutes: 480},
		{clock: "08:30:00", minutes: 510},
		{clock: "00:00", minutes: 0},
		{clock: "23:59", minutes: 1439},
		{clock: " 19:00 ", minutes: 1140},
		{clock: "24:00", wantErr: true},
		{clock: "08:60", wantErr: true},
		{clock: "8", wantErr: true},
		{clock: "", wantErr: true},
		{clock: "ocho:30", wantErr: true},
	}

	for _, tt := range tests {
		minutes, err := ParseClockMinutes(tt.clock)
		if tt.wantErr {
			assert.Error(t, err, "clock %q", tt.clock)
			continue
		}
		require.NoError(t, err, "clock %q", tt.clock)
		assert.Equal(t, tt.minutes, minutes, "clock %q", tt.clock)
	}
}

func TestNormalizeClock(t *testing.T) {
	normalized, err := NormalizeClock("8:05")
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", normalized)

	normalized, err = NormalizeClock("22:00:00")
	require.NoError(t, err)
	assert.Equal(t, "22:00:00", normalized)

	_, err = NormalizeClock("25:00")
	assert.Error(t, err)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 480, DurationMinutes(8*60, 16*60))
	// Midnight wrap: 23:00 to 01:00 is two hours.
	assert.Equal(t, 120, DurationMinutes(23*60, 1*60))
	// Zero length means no work, not a full day.
	assert.Equal(t, 0, DurationMinutes(10*60, 10*60))
	assert.Equal(t, 1439, DurationMinutes(1, 0))
}

func TestSplitDayNight(t *testing.T) {
	nightStart := 19 * 60
	nightEnd := 6 * 60

	tests := []struct {
		name       string
		start, end int
		day, night int
	}{
		{name: "all day", start: 8 * 60, end: 16 * 60, day: 480, night: 0},
		{name: "all night", start: 20 * 60, end: 23 * 60, day: 0, night: 180},
		{name: "crosses into night", start: 17 * 60, end: 21 * 60, day: 120, night: 120},
		{name: "wraps midnight inside night", start: 22 * 60, end: 2 * 60, day: 0, night: 240},
		{name: "wraps midnight out of night", start: 23 * 60, end: 8 * 60, day: 120, night: 420},
		{name: "ends at night start", start: 14 * 60, end: 19 * 60, day: 300, night: 0},
		{name: "early morning night tail", start: 5 * 60, end: 7 * 60, day: 60, night: 60},
		{name: "zero length", start: 9 * 60, end: 9 * 60, day: 0, night: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, night := SplitDayNight(tt.start, tt.end, nightStart, nightEnd)
			assert.Equal(t, tt.day, day)
			assert.Equal(t, tt.night, night)
		})
	}
}

// The split must be exhaustive: day + night always equals the duration.
func TestSplitDayNightExhaustive(t *testing.T) {
	nightWindows := [][2]int{{19 * 60, 6 * 60}, {21 * 60, 5 * 60}, {0, 0}}

	for _, window := range nightWindows {
		for start := 0; start < MinutesPerDay; start += 137 {
			for end := 0; end < MinutesPerDay; end += 211 {
				day, night := SplitDayNight(start, end, window[0], window[1])
				require.Equal(t, DurationMinutes(start, end), day+night,
					"start=%d end=%d window=%v", start, end, window)
				require.GreaterOrEqual(t, day, 0)
				require.GreaterOrEqual(t, night, 0)
			}
		}
	}
}
