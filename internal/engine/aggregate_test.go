package engine

import (
	"testing"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateGroupTotals(t *testing.T) {
	classification := Classification{
		domain.NewClassificationCode(domain.BaseRegular, false):   hours("40"),
		domain.NewClassificationCode(domain.BaseRegular, true):    hours("4"),
		domain.NewClassificationCode(domain.BaseExtra, false):     hours("2"),
		domain.NewClassificationCode(domain.BaseDominical, false): hours("6"),
		domain.NewClassificationCode(domain.BaseFestivo, true):    hours("4"),
	}

	totals := AggregateGroup(classification, nil)

	assert.True(t, totals.RegularHours.Equal(hours("44")), "regular %s", totals.RegularHours)
	assert.True(t, totals.OvertimeHours.Equal(hours("8")), "overtime %s", totals.OvertimeHours)
	assert.True(t, totals.FestivoHours.Equal(hours("4")), "festivo %s", totals.FestivoHours)
	// Festivo hours already live inside the regular subtotal; the grand
	// total must not count them twice.
	assert.True(t, totals.TotalHours.Equal(hours("52")), "total %s", totals.TotalHours)
	assert.True(t, totals.AssignedHours.Equal(hours("48")), "assigned %s", totals.AssignedHours)
}

func TestAggregateGroupPredominantByHours(t *testing.T) {
	classification := Classification{
		domain.NewClassificationCode(domain.BaseExtra, false):        hours("2"),
		domain.NewClassificationCode(domain.BaseExtraFestivo, false): hours("5"),
	}

	totals := AggregateGroup(classification, nil)

	require.NotNil(t, totals.PredominantOvertime)
	assert.Equal(t, "EXTRA_FESTIVO_DIURNA", totals.PredominantOvertime.Code)
}

func TestAggregateGroupPredominantTieBreak(t *testing.T) {
	// Equal hours: the priority table decides (EXTRA_FESTIVO_DIURNA 300 over
	// EXTRA_DIURNA 100).
	classification := Classification{
		domain.NewClassificationCode(domain.BaseExtra, false):        hours("5"),
		domain.NewClassificationCode(domain.BaseExtraFestivo, false): hours("5"),
	}

	totals := AggregateGroup(classification, nil)

	require.NotNil(t, totals.PredominantOvertime)
	assert.Equal(t, "EXTRA_FESTIVO_DIURNA", totals.PredominantOvertime.Code)
}

func TestAggregateGroupPredominantFestivoFamily(t *testing.T) {
	classification := Classification{
		domain.NewClassificationCode(domain.BaseFestivo, false): hours("3"),
		domain.NewClassificationCode(domain.BaseFestivo, true):  hours("3"),
	}

	totals := AggregateGroup(classification, nil)

	require.NotNil(t, totals.PredominantFestivo)
	assert.Equal(t, "FESTIVO_NOCTURNA", totals.PredominantFestivo.Code)
	assert.Nil(t, totals.PredominantOvertime)
}

func TestAggregateGroupNoQualifyingCodes(t *testing.T) {
	classification := Classification{
		domain.NewClassificationCode(domain.BaseRegular, false): hours("40"),
	}

	totals := AggregateGroup(classification, nil)

	assert.Nil(t, totals.PredominantOvertime)
	assert.Nil(t, totals.PredominantFestivo)
}

func TestAggregateGroupCatalogLookup(t *testing.T) {
	catalog := []domain.OvertimeType{
		{ID: 1, Code: "EXTRA_NOCTURNA", Name: "Hora extra nocturna", IsActive: true},
		{ID: 2, Code: "EXTRA_DIURNA", Name: "Hora extra diurna (inactiva)", IsActive: false},
	}

	classification := Classification{
		domain.NewClassificationCode(domain.BaseExtra, true): hours("3"),
	}
	totals := AggregateGroup(classification, catalog)
	require.NotNil(t, totals.PredominantOvertime)
	assert.Equal(t, int64(1), totals.PredominantOvertime.ID)
	assert.Equal(t, "Hora extra nocturna", totals.PredominantOvertime.Name)

	// Inactive catalog entry degrades to a synthesized fallback.
	classification = Classification{
		domain.NewClassificationCode(domain.BaseExtra, false): hours("3"),
	}
	totals = AggregateGroup(classification, catalog)
	require.NotNil(t, totals.PredominantOvertime)
	assert.Equal(t, int64(0), totals.PredominantOvertime.ID)
	assert.Equal(t, "EXTRA_DIURNA", totals.PredominantOvertime.Code)
	assert.Equal(t, "Extra Diurna", totals.PredominantOvertime.Name)
}
