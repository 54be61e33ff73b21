package engine

import (
	"sort"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// GroupAssignments partitions one employee's assignments into groups of
// transitively overlapping date ranges. Assignments whose ranges touch on a
// shared date belong to the same group; a gap of at least one full day
// starts a new one.
func GroupAssignments(assignments []*domain.ScheduleAssignment) [][]*domain.ScheduleAssignment {
	if len(assignments) == 0 {
		return nil
	}

	sorted := make([]*domain.ScheduleAssignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].StartDate.Equal(sorted[j].StartDate) {
			return sorted[i].StartDate.Before(sorted[j].StartDate)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var groups [][]*domain.ScheduleAssignment
	var current []*domain.ScheduleAssignment
	var currentEnd time.Time

	for _, assignment := range sorted {
		end := assignment.EffectiveEndDate()

		if len(current) == 0 || assignment.StartDate.After(currentEnd) {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = []*domain.ScheduleAssignment{assignment}
			currentEnd = end
			continue
		}

		current = append(current, assignment)
		if end.After(currentEnd) {
			currentEnd = end
		}
	}

	return append(groups, current)
}

// GroupPeriod returns the date range a group covers, the earliest start and
// the latest effective end of its members.
func GroupPeriod(group []*domain.ScheduleAssignment) (start, end time.Time) {
	for i, assignment := range group {
		assignmentEnd := assignment.EffectiveEndDate()
		if i == 0 {
			start, end = assignment.StartDate, assignmentEnd
			continue
		}
		if assignment.StartDate.Before(start) {
			start = assignment.StartDate
		}
		if assignmentEnd.After(end) {
			end = assignmentEnd
		}
	}
	return start, end
}
