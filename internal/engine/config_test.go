package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapConfigSource map[string]string

func (m mapConfigSource) GetConfig(key string) (string, error) {
	if value, exists := m[key]; exists {
		return value, nil
	}
	return "", errors.New("clave no encontrada")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(nil)

	assert.Equal(t, 19*60, cfg.NightStartMin)
	assert.Equal(t, 6*60, cfg.NightEndMin)
	assert.Equal(t, 44*60, cfg.WeeklyLimitMin)
}

func TestLoadConfigFromSource(t *testing.T) {
	cfg := LoadConfig(mapConfigSource{
		ConfigKeyNightStart:  "21:00",
		ConfigKeyNightEnd:    "05:00",
		ConfigKeyWeeklyHours: "48:00",
		ConfigKeyBreak:       "30",
		ConfigKeyDailyHours:  "8",
	})

	assert.Equal(t, 21*60, cfg.NightStartMin)
	assert.Equal(t, 5*60, cfg.NightEndMin)
	assert.Equal(t, 48*60, cfg.WeeklyLimitMin)
	assert.Equal(t, 30, cfg.BreakMin)
	assert.Equal(t, 8*60, cfg.DailyHoursMin)
}

func TestLoadConfigPlainHourCount(t *testing.T) {
	cfg := LoadConfig(mapConfigSource{ConfigKeyWeeklyHours: "44"})
	assert.Equal(t, 44*60, cfg.WeeklyLimitMin)

	cfg = LoadConfig(mapConfigSource{ConfigKeyWeeklyHours: "42.5"})
	assert.Equal(t, 42*60+30, cfg.WeeklyLimitMin)
}

// Malformed values degrade to defaults instead of failing the run.
func TestLoadConfigMalformedFallsBack(t *testing.T) {
	cfg := LoadConfig(mapConfigSource{
		ConfigKeyNightStart:  "siete de la noche",
		ConfigKeyWeeklyHours: "-3",
		ConfigKeyBreak:       "media hora",
	})

	assert.Equal(t, 19*60, cfg.NightStartMin)
	assert.Equal(t, 44*60, cfg.WeeklyLimitMin)
	assert.Equal(t, 0, cfg.BreakMin)
}
