package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Classification maps payroll buckets to accumulated hours, rounded to two
// decimals. Only buckets with non-zero hours appear.
type Classification map[domain.ClassificationCode]decimal.Decimal

// Get returns the hours for a code, zero if absent.
func (c Classification) Get(code domain.ClassificationCode) decimal.Decimal {
	if hours, exists := c[code]; exists {
		return hours
	}
	return decimal.Zero
}

// Classifier turns raw work segments into classified payroll hours. One
// classification run processes one employee set in a single pass; the
// weekly accumulator lives inside the run and is never shared across calls.
type Classifier struct {
	cfg    Config
	oracle HolidayOracle
}

func NewClassifier(cfg Config, oracle HolidayOracle) *Classifier {
	return &Classifier{cfg: cfg, oracle: oracle}
}

// datedSegments is one assignment's worth of raw segments on one date.
type datedSegments struct {
	date         time.Time
	assignmentID int64
	employeeID   int64
	segments     []Segment
}

// hourDetail is one day-or-night half of a segment, classified
// independently.
type hourDetail struct {
	minutes int
	night   bool
	holiday bool
	sunday  bool
	overlap bool
	weekKey string
}

// ClassifyAssignments classifies every worked minute of the given
// assignments into exactly one payroll bucket. Segments are processed in
// chronological order per employee with a running accumulator per
// (employee, ISO week); holiday hours double-book into the FESTIVO overlay.
func (c *Classifier) ClassifyAssignments(assignments []*domain.ScheduleAssignment, templates map[int64]*domain.ShiftTemplate) (Classification, error) {
	entries, err := c.collect(assignments, templates)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].date.Equal(entries[j].date) {
			return entries[i].date.Before(entries[j].date)
		}
		return entries[i].assignmentID < entries[j].assignmentID
	})

	// The lowest assignment id on a date is the base schedule for that
	// date; anything further is a genuine second shift and always lands in
	// the EXTRA family.
	baseByDay := make(map[string]int64)
	for _, entry := range entries {
		if len(entry.segments) == 0 {
			continue
		}
		key := dayKey(entry.employeeID, entry.date)
		if base, exists := baseByDay[key]; !exists || entry.assignmentID < base {
			baseByDay[key] = entry.assignmentID
		}
	}

	minutesByCode := make(map[domain.ClassificationCode]int)
	accumulator := make(map[string]int)

	for _, entry := range entries {
		isBase := baseByDay[dayKey(entry.employeeID, entry.date)] == entry.assignmentID

		holiday := c.oracle.IsHoliday(entry.date)
		if holiday && c.oracle.HasExemption(entry.employeeID, entry.date) &&
			c.oracle.ExemptionReason(entry.employeeID, entry.date) == domain.ReasonNoAplicarRecargo {
			// Worked holiday charged as a plain day.
			holiday = false
		}
		sunday := ISODayOfWeek(entry.date) == 7

		for _, segment := range entry.segments {
			dayMin, nightMin := SplitDayNight(segment.StartMin, segment.EndMin, c.cfg.NightStartMin, c.cfg.NightEndMin)

			for _, detail := range []hourDetail{
				{minutes: dayMin, night: false, holiday: holiday, sunday: sunday, overlap: !isBase, weekKey: weekKey(entry.employeeID, entry.date)},
				{minutes: nightMin, night: true, holiday: holiday, sunday: sunday, overlap: !isBase, weekKey: weekKey(entry.employeeID, entry.date)},
			} {
				if detail.minutes == 0 {
					continue
				}
				c.classifyDetail(minutesByCode, accumulator, detail)
			}
		}
	}

	classification := make(Classification, len(minutesByCode))
	sixty := decimal.NewFromInt(60)
	for code, minutes := range minutesByCode {
		if minutes == 0 {
			continue
		}
		classification[code] = decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2)
	}

	return classification, nil
}

// collect expands every assignment over its date range into raw segments,
// excluding dates suppressed by a do-not-work exemption.
func (c *Classifier) collect(assignments []*domain.ScheduleAssignment, templates map[int64]*domain.ShiftTemplate) ([]datedSegments, error) {
	var entries []datedSegments

	for _, assignment := range assignments {
		if assignment.EmployeeID == 0 {
			return nil, &ValidationError{Fields: []string{"la asignación no tiene empleado"}}
		}
		endDate := assignment.EffectiveEndDate()
		if endDate.Before(assignment.StartDate) {
			return nil, &ValidationError{Fields: []string{fmt.Sprintf("la asignación %d termina antes de empezar", assignment.ID)}}
		}

		template := templates[assignment.ShiftTemplateID]

		for date := assignment.StartDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
			if c.oracle.HasExemption(assignment.EmployeeID, date) {
				if reason := c.oracle.ExemptionReason(assignment.EmployeeID, date); reason != "" && reason != domain.ReasonNoAplicarRecargo {
					// Do-not-work family: the day was never generated.
					continue
				}
			}

			segments, err := ExtractSegments(assignment, template, date)
			if err != nil {
				return nil, &ValidationError{Fields: []string{err.Error()}}
			}
			if len(segments) == 0 {
				continue
			}

			entries = append(entries, datedSegments{
				date:         date,
				assignmentID: assignment.ID,
				employeeID:   assignment.EmployeeID,
				segments:     segments,
			})
		}
	}

	return entries, nil
}

func (c *Classifier) classifyDetail(minutesByCode map[domain.ClassificationCode]int, accumulator map[string]int, d hourDetail) {
	switch {
	case d.overlap:
		base := domain.BaseExtra
		switch {
		case d.holiday && d.sunday:
			base = domain.BaseExtraFestivoDominical
		case d.holiday:
			base = domain.BaseExtraFestivo
		case d.sunday:
			base = domain.BaseExtraDominical
		}
		minutesByCode[domain.NewClassificationCode(base, d.night)] += d.minutes

	case d.holiday:
		// Holiday hours book into REGULAR so they count toward the weekly
		// cap, and into the FESTIVO overlay for payroll display.
		minutesByCode[domain.NewClassificationCode(domain.BaseRegular, d.night)] += d.minutes
		overlay := domain.BaseFestivo
		if d.sunday {
			overlay = domain.BaseFestivoDominical
		}
		minutesByCode[domain.NewClassificationCode(overlay, d.night)] += d.minutes
		accumulator[d.weekKey] += d.minutes

	case d.sunday:
		minutesByCode[domain.NewClassificationCode(domain.BaseDominical, d.night)] += d.minutes

	default:
		limit := c.cfg.WeeklyLimitMin
		current := accumulator[d.weekKey]
		switch {
		case current >= limit:
			minutesByCode[domain.NewClassificationCode(domain.BaseExtra, d.night)] += d.minutes
			accumulator[d.weekKey] = current + d.minutes
		case current+d.minutes > limit:
			remaining := limit - current
			minutesByCode[domain.NewClassificationCode(domain.BaseRegular, d.night)] += remaining
			minutesByCode[domain.NewClassificationCode(domain.BaseExtra, d.night)] += d.minutes - remaining
			accumulator[d.weekKey] = limit
		default:
			minutesByCode[domain.NewClassificationCode(domain.BaseRegular, d.night)] += d.minutes
			accumulator[d.weekKey] = current + d.minutes
		}
	}
}

// weekKey scopes the accumulator to one employee and one ISO week.
func weekKey(employeeID int64, date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d#%d-W%02d", employeeID, year, week)
}

func dayKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d#%s", employeeID, DateKey(date))
}
