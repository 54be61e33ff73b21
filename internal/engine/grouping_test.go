package engine

import (
	"testing"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeAssignment(id int64, start time.Time, end *time.Time) *domain.ScheduleAssignment {
	return &domain.ScheduleAssignment{ID: id, EmployeeID: 1, StartDate: start, EndDate: end}
}

func TestGroupAssignmentsOverlapping(t *testing.T) {
	jan31 := date(2025, time.January, 31)
	feb10 := date(2025, time.February, 10)

	groups := GroupAssignments([]*domain.ScheduleAssignment{
		rangeAssignment(2, date(2025, time.January, 20), &feb10),
		rangeAssignment(1, date(2025, time.January, 1), &jan31),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
	assert.Equal(t, int64(1), groups[0][0].ID)
	assert.Equal(t, int64(2), groups[0][1].ID)

	start, end := GroupPeriod(groups[0])
	assert.Equal(t, date(2025, time.January, 1), start)
	assert.Equal(t, feb10, end)
}

func TestGroupAssignmentsDisjoint(t *testing.T) {
	jan10 := date(2025, time.January, 10)
	jan31 := date(2025, time.January, 31)

	groups := GroupAssignments([]*domain.ScheduleAssignment{
		rangeAssignment(1, date(2025, time.January, 1), &jan10),
		rangeAssignment(2, date(2025, time.January, 12), &jan31),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, int64(1), groups[0][0].ID)
	assert.Equal(t, int64(2), groups[1][0].ID)
}

func TestGroupAssignmentsTouchingDateSharesGroup(t *testing.T) {
	jan10 := date(2025, time.January, 10)
	jan20 := date(2025, time.January, 20)

	groups := GroupAssignments([]*domain.ScheduleAssignment{
		rangeAssignment(1, date(2025, time.January, 1), &jan10),
		rangeAssignment(2, jan10, &jan20),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
}

func TestGroupAssignmentsTransitiveChain(t *testing.T) {
	jan15 := date(2025, time.January, 15)
	jan25 := date(2025, time.January, 25)
	feb5 := date(2025, time.February, 5)

	// 1 overlaps 2, 2 overlaps 3, but 1 and 3 are disjoint: still one group.
	groups := GroupAssignments([]*domain.ScheduleAssignment{
		rangeAssignment(1, date(2025, time.January, 1), &jan15),
		rangeAssignment(2, date(2025, time.January, 10), &jan25),
		rangeAssignment(3, date(2025, time.January, 20), &feb5),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0], 3)
}

func TestGroupAssignmentsNilEndDateIsSingleDay(t *testing.T) {
	jan31 := date(2025, time.January, 31)

	groups := GroupAssignments([]*domain.ScheduleAssignment{
		rangeAssignment(1, date(2025, time.January, 1), nil),
		rangeAssignment(2, date(2025, time.January, 2), &jan31),
	})

	require.Len(t, groups, 2)
}

func TestGroupAssignmentsEmpty(t *testing.T) {
	assert.Nil(t, GroupAssignments(nil))
}
