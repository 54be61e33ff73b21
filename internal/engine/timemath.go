package engine

import (
	"fmt"
	"strconv"
	"strings"
)

const MinutesPerDay = 1440

// ParseClockMinutes converts a clock time in HH:MM or HH:MM:SS form into
// minutes since midnight. Seconds are accepted and discarded.
func ParseClockMinutes(clock string) (int, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("hora inválida: %q", clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("hora inválida: %q", clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("hora inválida: %q", clock)
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, fmt.Errorf("hora inválida: %q", clock)
		}
	}

	return hours*60 + minutes, nil
}

// NormalizeClock rewrites a clock time into canonical HH:MM:SS form so that
// times coming from different sources compare consistently.
func NormalizeClock(clock string) (string, error) {
	minutes, err := ParseClockMinutes(clock)
	if err != nil {
		return "", err
	}
	return MinutesToClock(minutes), nil
}

func MinutesToClock(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d:00", m/60, m%60)
}

// DurationMinutes returns the length of the interval [start, end) in
// minutes. end < start means the interval wraps past midnight; start == end
// is a zero-length "no work" interval, not a full day.
func DurationMinutes(start, end int) int {
	if start == end {
		return 0
	}
	if end > start {
		return end - start
	}
	return MinutesPerDay - start + end
}

// SplitDayNight partitions the interval [start, end) against the night
// window [nightStart, 24:00) ∪ [00:00, nightEnd). Both the work interval
// and the split are exhaustive: day + night always equals the duration.
func SplitDayNight(start, end, nightStart, nightEnd int) (day, night int) {
	total := DurationMinutes(start, end)
	if total == 0 {
		return 0, 0
	}

	// Work on an absolute axis so an interval that wraps midnight becomes a
	// single contiguous [start, start+total) range spanning up to two days.
	absStart := start
	absEnd := start + total

	for d := 0; d <= 1; d++ {
		offset := d * MinutesPerDay
		night += overlap(absStart, absEnd, offset+nightStart, offset+MinutesPerDay)
		night += overlap(absStart, absEnd, offset, offset+nightEnd)
	}

	return total - night, night
}

func overlap(s1, e1, s2, e2 int) int {
	s := max(s1, s2)
	e := min(e1, e2)
	if e <= s {
		return 0
	}
	return e - s
}
