package engine

import (
	"testing"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaysFromTemplate(t *testing.T) {
	template := weekdayTemplate(1, []int32{1, 2, 3, 4, 5}, "08:00", "16:00")
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
		EndDate:         timePtr(date(2025, time.January, 12)),
	}

	result, err := GenerateDays(assignment, template, nil, NewSnapshot(nil, nil))
	require.NoError(t, err)

	// Seven days materialized; the weekend ones carry no blocks.
	require.Len(t, result.Days, 7)
	assert.Len(t, result.Days[0].Blocks, 1)
	assert.Equal(t, "08:00:00", result.Days[0].Blocks[0].StartTime)
	assert.Equal(t, "16:00:00", result.Days[0].Blocks[0].EndTime)
	assert.Empty(t, result.Days[5].Blocks)
	assert.Empty(t, result.Days[6].Blocks)
	assert.Empty(t, result.Exemptions)
	assert.Equal(t, result.Days, assignment.Days)
}

func TestGenerateDaysSkipsExemptedHoliday(t *testing.T) {
	template := weekdayTemplate(1, []int32{1, 2, 3, 4, 5}, "08:00", "16:00")
	holiday := date(2025, time.January, 6)
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       holiday,
		EndDate:         timePtr(date(2025, time.January, 8)),
	}

	decisions := map[string]domain.HolidayDecision{
		DateKey(holiday): {
			HolidayDate:        holiday,
			ApplyHolidayCharge: false,
			ExemptionReason:    domain.ReasonNoTrabajar,
		},
	}
	snapshot := NewSnapshot([]domain.Holiday{{Date: holiday, Name: "Día de los Reyes Magos"}}, nil)

	result, err := GenerateDays(assignment, template, decisions, snapshot)
	require.NoError(t, err)

	// The holiday itself is not materialized at all.
	require.Len(t, result.Days, 2)
	for _, d := range result.Days {
		assert.False(t, d.Date.Equal(holiday))
	}

	require.Len(t, result.Exemptions, 1)
	assert.Equal(t, int64(7), result.Exemptions[0].EmployeeID)
	assert.Equal(t, domain.ReasonNoTrabajar, result.Exemptions[0].Reason)
	assert.Equal(t, "Día de los Reyes Magos", result.Exemptions[0].HolidayName)
}

func TestGenerateDaysNoChargeWithoutReasonKeepsDay(t *testing.T) {
	template := weekdayTemplate(1, []int32{1}, "08:00", "16:00")
	holiday := date(2025, time.January, 6)
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       holiday,
	}

	decisions := map[string]domain.HolidayDecision{
		DateKey(holiday): {
			HolidayDate:        holiday,
			ApplyHolidayCharge: false,
		},
	}
	snapshot := NewSnapshot([]domain.Holiday{{Date: holiday, Name: "Día de los Reyes Magos"}}, nil)

	result, err := GenerateDays(assignment, template, decisions, snapshot)
	require.NoError(t, err)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Blocks, 1)

	require.Len(t, result.Exemptions, 1)
	assert.Equal(t, domain.ReasonNoAplicarRecargo, result.Exemptions[0].Reason)
}

func TestGenerateDaysSegmentOverride(t *testing.T) {
	template := &domain.ShiftTemplate{
		ID: 1,
		Segments: []domain.ShiftTemplateSegment{
			{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"}, // Mañana
			{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"}, // Tarde
		},
	}
	holiday := date(2025, time.January, 6)
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       holiday,
	}

	decisions := map[string]domain.HolidayDecision{
		DateKey(holiday): {
			HolidayDate:        holiday,
			ApplyHolidayCharge: true,
			SegmentOverrides: []domain.SegmentOverride{
				// Accent-insensitive match against the derived name.
				{SegmentName: "MANANA", StartTime: "09:00"},
				{SegmentName: "tarde", StartTime: "15:00", EndTime: "19:00"},
			},
		},
	}

	result, err := GenerateDays(assignment, template, decisions, NewSnapshot(nil, nil))
	require.NoError(t, err)

	require.Len(t, result.Days, 1)
	require.Len(t, result.Days[0].Blocks, 2)
	assert.Equal(t, "09:00:00", result.Days[0].Blocks[0].StartTime)
	assert.Equal(t, "12:00:00", result.Days[0].Blocks[0].EndTime)
	assert.Equal(t, "15:00:00", result.Days[0].Blocks[1].StartTime)
	assert.Equal(t, "19:00:00", result.Days[0].Blocks[1].EndTime)
}

func TestGenerateDaysIdempotent(t *testing.T) {
	template := weekdayTemplate(1, []int32{1, 3, 5}, "06:00", "14:00")
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
		EndDate:         timePtr(date(2025, time.January, 19)),
	}

	first, err := GenerateDays(assignment, template, nil, NewSnapshot(nil, nil))
	require.NoError(t, err)
	second, err := GenerateDays(assignment, template, nil, NewSnapshot(nil, nil))
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
	assert.Equal(t, second.Days, assignment.Days)
}

func TestGenerateDaysValidatesInput(t *testing.T) {
	template := weekdayTemplate(1, []int32{1}, "08:00", "16:00")

	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 10),
		EndDate:         timePtr(date(2025, time.January, 6)),
	}
	_, err := GenerateDays(assignment, template, nil, NewSnapshot(nil, nil))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	missingEmployee := &domain.ScheduleAssignment{
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
	}
	_, err = GenerateDays(missingEmployee, template, nil, NewSnapshot(nil, nil))
	require.ErrorAs(t, err, &validationErr)

	_, err = GenerateDays(&domain.ScheduleAssignment{EmployeeID: 7, StartDate: date(2025, time.January, 6)}, nil, nil, NewSnapshot(nil, nil))
	require.ErrorAs(t, err, &validationErr)
}

func TestGenerateDaysRejectsMalformedTemplateTimes(t *testing.T) {
	template := &domain.ShiftTemplate{
		ID: 1,
		Segments: []domain.ShiftTemplateSegment{
			{DayOfWeek: 1, StartTime: "veinticinco", EndTime: "16:00"},
		},
	}
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
	}

	_, err := GenerateDays(assignment, template, nil, NewSnapshot(nil, nil))
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSegmentNameForStart(t *testing.T) {
	assert.Equal(t, "Mañana", SegmentNameForStart(8*60))
	assert.Equal(t, "Mañana", SegmentNameForStart(0))
	assert.Equal(t, "Tarde", SegmentNameForStart(14*60))
	assert.Equal(t, "Tarde", SegmentNameForStart(19*60+59))
	assert.Equal(t, "Noche", SegmentNameForStart(20*60))
	assert.Equal(t, "Noche", SegmentNameForStart(23*60))
}
