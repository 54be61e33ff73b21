package engine

import (
	"fmt"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// DetectConflicts compares each proposed assignment against the existing
// set and against the other proposed ones. A conflict is one employee with
// overlapping clock-time ranges on the same calendar date; the first
// overlapping date short-circuits the pair.
func DetectConflicts(proposed, existing []*domain.ScheduleAssignment, templates map[int64]*domain.ShiftTemplate) []domain.ScheduleConflict {
	conflicts := make([]domain.ScheduleConflict, 0)

	for i, a := range proposed {
		for _, b := range existing {
			if b.EmployeeID != a.EmployeeID || b.ID == a.ID {
				continue
			}
			if conflict := detectPairConflict(a, b, templates); conflict != nil {
				conflicts = append(conflicts, *conflict)
			}
		}

		for j := 0; j < i; j++ {
			b := proposed[j]
			if b.EmployeeID != a.EmployeeID {
				continue
			}
			if conflict := detectPairConflict(a, b, templates); conflict != nil {
				conflicts = append(conflicts, *conflict)
			}
		}
	}

	return conflicts
}

func detectPairConflict(a, b *domain.ScheduleAssignment, templates map[int64]*domain.ShiftTemplate) *domain.ScheduleConflict {
	aEnd := a.EffectiveEndDate()
	bEnd := b.EffectiveEndDate()

	// Closed-interval date overlap test.
	if aEnd.Before(b.StartDate) || bEnd.Before(a.StartDate) {
		return nil
	}

	aTemplate := templates[a.ShiftTemplateID]
	bTemplate := templates[b.ShiftTemplateID]
	if aTemplate == nil || bTemplate == nil {
		return nil
	}

	start := maxDate(a.StartDate, b.StartDate)
	end := minDate(aEnd, bEnd)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dayOfWeek := ISODayOfWeek(date)
		aSegments := aTemplate.SegmentsForDay(dayOfWeek)
		bSegments := bTemplate.SegmentsForDay(dayOfWeek)
		if len(aSegments) == 0 || len(bSegments) == 0 {
			continue
		}

		for _, as := range aSegments {
			for _, bs := range bSegments {
				if segmentTimesOverlap(as, bs) {
					return &domain.ScheduleConflict{
						EmployeeID:   a.EmployeeID,
						ConflictDate: date,
						Message: fmt.Sprintf(
							"el empleado %d ya tiene turno de %s a %s el %s",
							a.EmployeeID, bs.StartTime, bs.EndTime, DateKey(date),
						),
					}
				}
			}
		}
	}

	return nil
}

// segmentTimesOverlap applies start1 < end2 && start2 < end1 over
// normalized minutes. Shift segments compared here are same-day, so no
// midnight-wrap handling is needed.
func segmentTimesOverlap(a, b domain.ShiftTemplateSegment) bool {
	aStart, err := ParseClockMinutes(a.StartTime)
	if err != nil {
		return false
	}
	aEnd, err := ParseClockMinutes(a.EndTime)
	if err != nil {
		return false
	}
	bStart, err := ParseClockMinutes(b.StartTime)
	if err != nil {
		return false
	}
	bEnd, err := ParseClockMinutes(b.EndTime)
	if err != nil {
		return false
	}

	return aStart < bEnd && bStart < aEnd
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
