package engine

import (
	"testing"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSegmentsMaterializedDayWins(t *testing.T) {
	monday := date(2025, time.January, 6)
	template := weekdayTemplate(1, []int32{1}, "08:00", "16:00")
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       monday,
		Days: []domain.ScheduleDay{
			day(monday, block("10:00", "13:00")),
		},
	}

	segments, err := ExtractSegments(assignment, template, monday)
	require.NoError(t, err)

	require.Len(t, segments, 1)
	assert.Equal(t, 10*60, segments[0].StartMin)
	assert.Equal(t, 13*60, segments[0].EndMin)
}

func TestExtractSegmentsEmptyDayIsExplicitNonWork(t *testing.T) {
	monday := date(2025, time.January, 6)
	template := weekdayTemplate(1, []int32{1}, "08:00", "16:00")
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       monday,
		Days: []domain.ScheduleDay{
			day(monday),
		},
	}

	// The day exists with zero blocks: no fallback to the template.
	segments, err := ExtractSegments(assignment, template, monday)
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestExtractSegmentsTemplateFallback(t *testing.T) {
	template := &domain.ShiftTemplate{
		ID: 1,
		Segments: []domain.ShiftTemplateSegment{
			{DayOfWeek: 1, StartTime: "06:00", EndTime: "10:00"},
			{DayOfWeek: 1, StartTime: "16:00", EndTime: "20:00"},
			{DayOfWeek: 2, StartTime: "08:00", EndTime: "16:00"},
		},
	}
	assignment := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
	}

	// Monday: both split-shift segments, in order.
	segments, err := ExtractSegments(assignment, template, date(2025, time.January, 6))
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, 6*60, segments[0].StartMin)
	assert.Equal(t, 16*60, segments[1].StartMin)

	// Wednesday: no matching segments.
	segments, err = ExtractSegments(assignment, template, date(2025, time.January, 8))
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestExtractSegmentsNoTemplate(t *testing.T) {
	assignment := &domain.ScheduleAssignment{
		EmployeeID: 7,
		StartDate:  date(2025, time.January, 6),
	}

	segments, err := ExtractSegments(assignment, nil, date(2025, time.January, 6))
	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestISODayOfWeek(t *testing.T) {
	assert.Equal(t, int32(1), ISODayOfWeek(date(2025, time.January, 6)))  // Monday
	assert.Equal(t, int32(7), ISODayOfWeek(date(2025, time.January, 12))) // Sunday
}
