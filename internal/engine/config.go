package engine

import (
	"strconv"
	"strings"
)

// Runtime configuration keys stored in the app_config table.
const (
	ConfigKeyNightStart  = "NIGHT_START"
	ConfigKeyNightEnd    = "NIGHT_END"
	ConfigKeyWeeklyHours = "WEEKLY_HOURS"
	ConfigKeyBreak       = "BREAK"
	ConfigKeyDailyHours  = "DAILY_HOURS"
)

// ConfigSource yields raw string values for runtime configuration keys.
type ConfigSource interface {
	GetConfig(key string) (string, error)
}

// Config is the immutable per-run engine configuration. All durations are
// minutes since midnight or plain minute counts.
type Config struct {
	NightStartMin  int
	NightEndMin    int
	WeeklyLimitMin int
	BreakMin       int
	DailyHoursMin  int
}

// DefaultConfig returns the documented fallbacks: night window 19:00-06:00,
// weekly cap 44h, 8h working day.
func DefaultConfig() Config {
	return Config{
		NightStartMin:  19 * 60,
		NightEndMin:    6 * 60,
		WeeklyLimitMin: 44 * 60,
		BreakMin:       0,
		DailyHoursMin:  8 * 60,
	}
}

// LoadConfig builds a Config from a source, replacing every missing or
// malformed value with its default. Payroll classification must never fail
// on bad configuration, so this function cannot return an error.
func LoadConfig(src ConfigSource) Config {
	cfg := DefaultConfig()
	if src == nil {
		return cfg
	}

	if m, ok := lookupClock(src, ConfigKeyNightStart); ok {
		cfg.NightStartMin = m
	}
	if m, ok := lookupClock(src, ConfigKeyNightEnd); ok {
		cfg.NightEndMin = m
	}
	if m, ok := lookupHours(src, ConfigKeyWeeklyHours); ok {
		cfg.WeeklyLimitMin = m
	}
	if m, ok := lookupMinutes(src, ConfigKeyBreak); ok {
		cfg.BreakMin = m
	}
	if m, ok := lookupHours(src, ConfigKeyDailyHours); ok {
		cfg.DailyHoursMin = m
	}

	return cfg
}

func lookupClock(src ConfigSource, key string) (int, bool) {
	raw, err := src.GetConfig(key)
	if err != nil {
		return 0, false
	}
	minutes, err := ParseClockMinutes(raw)
	if err != nil {
		return 0, false
	}
	return minutes, true
}

// lookupHours accepts both "44:00" and plain "44" (possibly fractional).
func lookupHours(src ConfigSource, key string) (int, bool) {
	raw, err := src.GetConfig(key)
	if err != nil {
		return 0, false
	}
	raw = strings.TrimSpace(raw)

	// "44:00" is an hour count, not a clock time, so hours may exceed 23.
	if hh, mm, found := strings.Cut(raw, ":"); found {
		hours, err := strconv.Atoi(hh)
		if err != nil || hours < 0 {
			return 0, false
		}
		minutes, err := strconv.Atoi(mm)
		if err != nil || minutes < 0 || minutes > 59 {
			return 0, false
		}
		return hours*60 + minutes, true
	}

	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil || hours < 0 {
		return 0, false
	}
	return int(hours * 60), true
}

func lookupMinutes(src ConfigSource, key string) (int, bool) {
	raw, err := src.GetConfig(key)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || minutes < 0 {
		return 0, false
	}
	return minutes, true
}
