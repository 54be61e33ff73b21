package utils

import (
	"fmt"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func parseClock(clock string) (time.Time, error) {
	if t, err := time.Parse("15:04:05", clock); err == nil {
		return t, nil
	}
	return time.Parse("15:04", clock)
}

// ValidateShiftTemplateSegments checks time formats and rejects overlapping
// segments on the same weekday. Overnight segments (end before start) are
// legal, they wrap past midnight.
func ValidateShiftTemplateSegments(st *domain.ShiftTemplate) error {
	for id, segment := range st.Segments {
		startTime, err := parseClock(segment.StartTime)
		if err != nil {
			return fmt.Errorf("el segmento %d tiene una hora de inicio inválida", id+1)
		}
		endTime, err := parseClock(segment.EndTime)
		if err != nil {
			return fmt.Errorf("el segmento %d tiene una hora de fin inválida", id+1)
		}
		if startTime.Equal(endTime) {
			return fmt.Errorf("el segmento %d tiene duración cero", id+1)
		}
		if segment.DayOfWeek < 1 || segment.DayOfWeek > 7 {
			return fmt.Errorf("el segmento %d tiene un día de la semana inválido", id+1)
		}
		if segment.BreakStart != nil {
			if _, err := parseClock(*segment.BreakStart); err != nil {
				return fmt.Errorf("el segmento %d tiene un inicio de descanso inválido", id+1)
			}
		}
		if segment.BreakEnd != nil {
			if _, err := parseClock(*segment.BreakEnd); err != nil {
				return fmt.Errorf("el segmento %d tiene un fin de descanso inválido", id+1)
			}
		}
	}

	// Overlap check only between non-overnight segments of the same day.
	// Overnight pairs are resolved later against the calendar, where the
	// spill into the next date is visible.
	for i := 0; i < len(st.Segments); i++ {
		iStart, _ := parseClock(st.Segments[i].StartTime)
		iEnd, _ := parseClock(st.Segments[i].EndTime)
		if iEnd.Before(iStart) {
			continue
		}

		for j := i + 1; j < len(st.Segments); j++ {
			if st.Segments[i].DayOfWeek != st.Segments[j].DayOfWeek {
				continue
			}
			jStart, _ := parseClock(st.Segments[j].StartTime)
			jEnd, _ := parseClock(st.Segments[j].EndTime)
			if jEnd.Before(jStart) {
				continue
			}

			if iStart.Before(jEnd) && jStart.Before(iEnd) {
				return fmt.Errorf("los segmentos %d y %d se solapan el mismo día", i+1, j+1)
			}
		}
	}

	return nil
}

// ValidateAssignmentDates enforces the date-range invariants shared by
// creation and regeneration.
func ValidateAssignmentDates(startDate time.Time, endDate *time.Time) error {
	if startDate.IsZero() {
		return fmt.Errorf("la fecha de inicio es obligatoria")
	}
	if endDate == nil {
		return fmt.Errorf("la fecha de fin es obligatoria")
	}
	if endDate.Before(startDate) {
		return fmt.Errorf("la fecha de fin no puede ser anterior a la fecha de inicio")
	}
	return nil
}
