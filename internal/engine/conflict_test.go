package engine

import (
	"testing"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayTemplate(id int64, days []int32, start, end string) *domain.ShiftTemplate {
	tpl := &domain.ShiftTemplate{ID: id}
	for _, d := range days {
		tpl.Segments = append(tpl.Segments, domain.ShiftTemplateSegment{
			DayOfWeek: d,
			StartTime: start,
			EndTime:   end,
		})
	}
	return tpl
}

func TestDetectConflictsOverlappingTimes(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{1, 2, 3, 4, 5}, "08:00", "16:00")
	shiftB := weekdayTemplate(2, []int32{1}, "09:00", "12:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA, 2: shiftB}

	existing := &domain.ScheduleAssignment{
		ID:              10,
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 1),
		EndDate:         timePtr(date(2025, time.January, 31)),
	}
	proposed := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 2,
		StartDate:       date(2025, time.January, 6),
		EndDate:         timePtr(date(2025, time.January, 6)),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{proposed},
		[]*domain.ScheduleAssignment{existing},
		templates,
	)

	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(7), conflicts[0].EmployeeID)
	assert.True(t, conflicts[0].ConflictDate.Equal(date(2025, time.January, 6)))
	assert.NotEmpty(t, conflicts[0].Message)
}

func TestDetectConflictsDisjointTimes(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{1, 2, 3, 4, 5}, "08:00", "16:00")
	shiftC := weekdayTemplate(3, []int32{2, 3, 4}, "17:00", "20:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA, 3: shiftC}

	existing := &domain.ScheduleAssignment{
		ID:              10,
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 1),
		EndDate:         timePtr(date(2025, time.January, 31)),
	}
	proposed := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 3,
		StartDate:       date(2025, time.January, 6),
		EndDate:         timePtr(date(2025, time.January, 10)),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{proposed},
		[]*domain.ScheduleAssignment{existing},
		templates,
	)

	assert.Empty(t, conflicts)
}

func TestDetectConflictsDifferentEmployees(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{1, 2, 3, 4, 5}, "08:00", "16:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA}

	existing := &domain.ScheduleAssignment{
		ID:              10,
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 1),
		EndDate:         timePtr(date(2025, time.January, 31)),
	}
	// Same shift, same dates, different employee: sharing is fine.
	proposed := &domain.ScheduleAssignment{
		EmployeeID:      8,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 1),
		EndDate:         timePtr(date(2025, time.January, 31)),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{proposed},
		[]*domain.ScheduleAssignment{existing},
		templates,
	)

	assert.Empty(t, conflicts)
}

func TestDetectConflictsDisjointDateRanges(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{1}, "08:00", "16:00")
	shiftB := weekdayTemplate(2, []int32{1}, "08:00", "16:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA, 2: shiftB}

	existing := &domain.ScheduleAssignment{
		ID:              10,
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 1),
		EndDate:         timePtr(date(2025, time.January, 15)),
	}
	proposed := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 2,
		StartDate:       date(2025, time.February, 1),
		EndDate:         timePtr(date(2025, time.February, 28)),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{proposed},
		[]*domain.ScheduleAssignment{existing},
		templates,
	)

	assert.Empty(t, conflicts)
}

func TestDetectConflictsAmongProposedBatch(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{3}, "10:00", "14:00")
	shiftB := weekdayTemplate(2, []int32{3}, "12:00", "18:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA, 2: shiftB}

	first := &domain.ScheduleAssignment{
		EmployeeID:      5,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 8),
		EndDate:         timePtr(date(2025, time.January, 8)),
	}
	second := &domain.ScheduleAssignment{
		EmployeeID:      5,
		ShiftTemplateID: 2,
		StartDate:       date(2025, time.January, 8),
		EndDate:         timePtr(date(2025, time.January, 8)),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{first, second},
		nil,
		templates,
	)

	require.Len(t, conflicts, 1)
	assert.True(t, conflicts[0].ConflictDate.Equal(date(2025, time.January, 8)))
}

func TestDetectConflictsMissingEndDateMeansSingleDay(t *testing.T) {
	shiftA := weekdayTemplate(1, []int32{1}, "08:00", "16:00")
	shiftB := weekdayTemplate(2, []int32{1}, "10:00", "12:00")
	templates := map[int64]*domain.ShiftTemplate{1: shiftA, 2: shiftB}

	existing := &domain.ScheduleAssignment{
		ID:              10,
		EmployeeID:      7,
		ShiftTemplateID: 1,
		StartDate:       date(2025, time.January, 6),
	}
	proposed := &domain.ScheduleAssignment{
		EmployeeID:      7,
		ShiftTemplateID: 2,
		StartDate:       date(2025, time.January, 6),
	}

	conflicts := DetectConflicts(
		[]*domain.ScheduleAssignment{proposed},
		[]*domain.ScheduleAssignment{existing},
		templates,
	)

	require.Len(t, conflicts, 1)
}
