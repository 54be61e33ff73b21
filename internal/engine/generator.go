package engine

import (
	"fmt"
	"strings"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// GeneratedDays is the output of one day-generation run: the materialized
// days for the assignment plus any exemption records to persist alongside.
type GeneratedDays struct {
	Days       []domain.ScheduleDay
	Exemptions []domain.HolidayExemption
}

// GenerateDays expands an assignment over its date range into concrete
// ScheduleDays, honoring per-date holiday decisions: a decision with a
// reason and no holiday charge suppresses the day entirely; a chargeless
// decision without a reason keeps the day but records a NO_APLICAR_RECARGO
// exemption; segment overrides replace template times by derived segment
// name. The assignment's day list is replaced wholesale, so regenerating
// with the same inputs yields an identical set. A failure on any date
// aborts the whole run.
func GenerateDays(a *domain.ScheduleAssignment, tpl *domain.ShiftTemplate, decisions map[string]domain.HolidayDecision, oracle HolidayOracle) (*GeneratedDays, error) {
	if err := validateAssignmentInput(a, tpl); err != nil {
		return nil, err
	}

	result := &GeneratedDays{
		Days:       make([]domain.ScheduleDay, 0),
		Exemptions: make([]domain.HolidayExemption, 0),
	}

	endDate := a.EffectiveEndDate()
	for date := a.StartDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		decision, hasDecision := decisions[DateKey(date)]

		if hasDecision && !decision.ApplyHolidayCharge {
			if strings.TrimSpace(decision.ExemptionReason) != "" {
				// Do-not-work exemption: record it and skip the day.
				result.Exemptions = append(result.Exemptions, domain.HolidayExemption{
					EmployeeID:  a.EmployeeID,
					Date:        date,
					HolidayName: oracle.HolidayName(date),
					Reason:      decision.ExemptionReason,
				})
				continue
			}

			// Worked but charged as a normal day.
			result.Exemptions = append(result.Exemptions, domain.HolidayExemption{
				EmployeeID:  a.EmployeeID,
				Date:        date,
				HolidayName: oracle.HolidayName(date),
				Reason:      domain.ReasonNoAplicarRecargo,
			})
		}

		day := domain.ScheduleDay{
			Date:      date,
			DayOfWeek: ISODayOfWeek(date),
			Blocks:    make([]domain.TimeBlock, 0),
		}

		for _, segment := range tpl.SegmentsForDay(day.DayOfWeek) {
			startTime, endTime, err := effectiveTimes(segment, decision, hasDecision)
			if err != nil {
				return nil, err
			}
			day.Blocks = append(day.Blocks, domain.TimeBlock{
				StartTime: startTime,
				EndTime:   endTime,
			})
		}

		result.Days = append(result.Days, day)
	}

	a.Days = result.Days

	return result, nil
}

func effectiveTimes(segment domain.ShiftTemplateSegment, decision domain.HolidayDecision, hasDecision bool) (string, string, error) {
	startTime, err := NormalizeClock(segment.StartTime)
	if err != nil {
		return "", "", &ValidationError{Fields: []string{err.Error()}}
	}
	endTime, err := NormalizeClock(segment.EndTime)
	if err != nil {
		return "", "", &ValidationError{Fields: []string{err.Error()}}
	}

	if !hasDecision {
		return startTime, endTime, nil
	}

	startMin, _ := ParseClockMinutes(segment.StartTime)
	name := SegmentNameForStart(startMin)

	for _, override := range decision.SegmentOverrides {
		if !segmentNameMatches(override.SegmentName, name) {
			continue
		}
		if strings.TrimSpace(override.StartTime) != "" {
			startTime, err = NormalizeClock(override.StartTime)
			if err != nil {
				return "", "", &ValidationError{Fields: []string{err.Error()}}
			}
		}
		if strings.TrimSpace(override.EndTime) != "" {
			endTime, err = NormalizeClock(override.EndTime)
			if err != nil {
				return "", "", &ValidationError{Fields: []string{err.Error()}}
			}
		}
	}

	return startTime, endTime, nil
}

// SegmentNameForStart derives the display name of a template segment from
// its start hour.
func SegmentNameForStart(startMin int) string {
	switch {
	case startMin < 14*60:
		return "Mañana"
	case startMin < 20*60:
		return "Tarde"
	default:
		return "Noche"
	}
}

// segmentNameMatches compares segment names ignoring case and accents, so
// "MAÑANA", "mañana" and "manana" all match.
func segmentNameMatches(a, b string) bool {
	return foldName(a) == foldName(b)
}

var accentFolder = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func foldName(name string) string {
	return strings.ToLower(accentFolder.Replace(strings.TrimSpace(name)))
}

func validateAssignmentInput(a *domain.ScheduleAssignment, tpl *domain.ShiftTemplate) error {
	validationErr := &ValidationError{}

	if a.EmployeeID == 0 {
		validationErr.Add("la asignación no tiene empleado")
	}
	if a.ShiftTemplateID == 0 && tpl == nil {
		validationErr.Add("la asignación no tiene plantilla de turno")
	}
	if a.StartDate.IsZero() {
		validationErr.Add("la asignación no tiene fecha de inicio")
	}
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		validationErr.Add(fmt.Sprintf("la fecha final %s es anterior a la fecha de inicio %s", DateKey(*a.EndDate), DateKey(a.StartDate)))
	}
	if tpl == nil {
		validationErr.Add("la plantilla de turno no existe")
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}
