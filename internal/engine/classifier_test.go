package engine

import (
	"testing"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func day(d time.Time, blocks ...domain.TimeBlock) domain.ScheduleDay {
	return domain.ScheduleDay{
		Date:      d,
		DayOfWeek: ISODayOfWeek(d),
		Blocks:    blocks,
	}
}

func block(start, end string) domain.TimeBlock {
	return domain.TimeBlock{StartTime: start, EndTime: end}
}

func assertHours(t *testing.T, classification Classification, base domain.ClassificationBase, night bool, hours string) {
	t.Helper()
	code := domain.NewClassificationCode(base, night)
	expected := decimal.RequireFromString(hours)
	assert.True(t, expected.Equal(classification.Get(code)),
		"%s: want %s, got %s", code.Code(), expected, classification.Get(code))
}

func TestClassifyRegularWeek(t *testing.T) {
	// Mon 2025-01-06, five 8h day shifts: all regular, under the 44h cap.
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  date(2025, time.January, 6),
		EndDate:    timePtr(date(2025, time.January, 10)),
	}
	for i := 0; i < 5; i++ {
		d := date(2025, time.January, 6+i)
		assignment.Days = append(assignment.Days, day(d, block("08:00", "16:00")))
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "40")
	assert.Len(t, classification, 1)
}

func TestClassifyWeeklyBoundarySplit(t *testing.T) {
	// 43h accumulated Mon-Fri, then a 2h Saturday segment: 1h regular,
	// 1h extra, accumulator pinned at exactly 44h.
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  date(2025, time.January, 6),
		EndDate:    timePtr(date(2025, time.January, 11)),
	}
	for i := 0; i < 4; i++ {
		d := date(2025, time.January, 6+i)
		assignment.Days = append(assignment.Days, day(d, block("08:00", "18:00"))) // 10h
	}
	assignment.Days = append(assignment.Days, day(date(2025, time.January, 10), block("08:00", "11:00"))) // 3h -> 43h
	assignment.Days = append(assignment.Days, day(date(2025, time.January, 11), block("08:00", "10:00"))) // 2h

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "44")
	assertHours(t, classification, domain.BaseExtra, false, "1")
}

func TestClassifyOverCapGoesFullyExtra(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeeklyLimitMin = 8 * 60

	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 3,
		StartDate:  date(2025, time.January, 6),
		EndDate:    timePtr(date(2025, time.January, 7)),
		Days: []domain.ScheduleDay{
			day(date(2025, time.January, 6), block("08:00", "16:00")),
			day(date(2025, time.January, 7), block("08:00", "12:00")),
		},
	}

	classifier := NewClassifier(cfg, NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "8")
	assertHours(t, classification, domain.BaseExtra, false, "4")
}

func TestClassifyWeeklyAccumulatorResetsAcrossISOWeeks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeeklyLimitMin = 8 * 60

	// Friday of one ISO week and Monday of the next: independent caps.
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 3,
		StartDate:  date(2025, time.January, 10),
		EndDate:    timePtr(date(2025, time.January, 13)),
		Days: []domain.ScheduleDay{
			day(date(2025, time.January, 10), block("08:00", "16:00")),
			day(date(2025, time.January, 13), block("08:00", "16:00")),
		},
	}

	classifier := NewClassifier(cfg, NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "16")
	assert.Len(t, classification, 1)
}

func TestClassifyHolidayDoubleBooking(t *testing.T) {
	// 4 night hours on a holiday: booked into REGULAR_NOCTURNA for the cap
	// and into FESTIVO_NOCTURNA for display, without inflating the total.
	holiday := date(2025, time.January, 6) // Reyes Magos, a Monday
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  holiday,
		Days: []domain.ScheduleDay{
			day(holiday, block("20:00", "00:00")),
		},
	}

	snapshot := NewSnapshot([]domain.Holiday{{Date: holiday, Name: "Día de los Reyes Magos"}}, nil)
	classifier := NewClassifier(DefaultConfig(), snapshot)
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, true, "4")
	assertHours(t, classification, domain.BaseFestivo, true, "4")

	totals := AggregateGroup(classification, nil)
	assert.True(t, totals.TotalHours.Equal(decimal.NewFromInt(4)), "total %s", totals.TotalHours)
}

func TestClassifyHolidayExemptionNoAplicarRecargo(t *testing.T) {
	holiday := date(2025, time.January, 6)
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  holiday,
		Days: []domain.ScheduleDay{
			day(holiday, block("08:00", "12:00")),
		},
	}

	snapshot := NewSnapshot(
		[]domain.Holiday{{Date: holiday, Name: "Día de los Reyes Magos"}},
		[]domain.HolidayExemption{{EmployeeID: 7, Date: holiday, Reason: domain.ReasonNoAplicarRecargo}},
	)
	classifier := NewClassifier(DefaultConfig(), snapshot)
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "4")
	assertHours(t, classification, domain.BaseFestivo, false, "0")
}

func TestClassifyDoNotWorkExemptionSkipsDate(t *testing.T) {
	holiday := date(2025, time.January, 6)
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  holiday,
		Days: []domain.ScheduleDay{
			day(holiday, block("08:00", "12:00")),
		},
	}

	snapshot := NewSnapshot(
		[]domain.Holiday{{Date: holiday, Name: "Día de los Reyes Magos"}},
		[]domain.HolidayExemption{{EmployeeID: 7, Date: holiday, Reason: domain.ReasonNoTrabajar}},
	)
	classifier := NewClassifier(DefaultConfig(), snapshot)
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assert.Empty(t, classification)
}

func TestClassifySunday(t *testing.T) {
	sunday := date(2025, time.January, 12)
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  sunday,
		Days: []domain.ScheduleDay{
			day(sunday, block("08:00", "14:00")),
		},
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseDominical, false, "6")
	assertHours(t, classification, domain.BaseRegular, false, "0")
}

func TestClassifyHolidaySunday(t *testing.T) {
	sunday := date(2025, time.January, 12)
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  sunday,
		Days: []domain.ScheduleDay{
			day(sunday, block("08:00", "12:00")),
		},
	}

	snapshot := NewSnapshot([]domain.Holiday{{Date: sunday, Name: "Festivo trasladado"}}, nil)
	classifier := NewClassifier(DefaultConfig(), snapshot)
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "4")
	assertHours(t, classification, domain.BaseFestivoDominical, false, "4")
}

func TestClassifyOverlapSecondAssignmentIsExtra(t *testing.T) {
	monday := date(2025, time.January, 6)
	base := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  monday,
		Days: []domain.ScheduleDay{
			day(monday, block("08:00", "16:00")),
		},
	}
	second := &domain.ScheduleAssignment{
		ID:         2,
		EmployeeID: 7,
		StartDate:  monday,
		Days: []domain.ScheduleDay{
			day(monday, block("17:00", "19:00")),
		},
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{base, second}, nil)
	require.NoError(t, err)

	// The second shift is extra even though the week is nowhere near the cap.
	assertHours(t, classification, domain.BaseRegular, false, "8")
	assertHours(t, classification, domain.BaseExtra, false, "2")
}

func TestClassifyOverlapOnSundayIsExtraDominical(t *testing.T) {
	sunday := date(2025, time.January, 12)
	base := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  sunday,
		Days: []domain.ScheduleDay{
			day(sunday, block("08:00", "12:00")),
		},
	}
	second := &domain.ScheduleAssignment{
		ID:         2,
		EmployeeID: 7,
		StartDate:  sunday,
		Days: []domain.ScheduleDay{
			day(sunday, block("14:00", "16:00")),
		},
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{base, second}, nil)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseDominical, false, "4")
	assertHours(t, classification, domain.BaseExtraDominical, false, "2")
}

func TestClassifyTemplateFallbackWhenDayNotMaterialized(t *testing.T) {
	template := &domain.ShiftTemplate{
		ID: 5,
		Segments: []domain.ShiftTemplateSegment{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "13:00"},
		},
	}
	assignment := &domain.ScheduleAssignment{
		ID:              1,
		EmployeeID:      7,
		ShiftTemplateID: 5,
		StartDate:       date(2025, time.January, 6),
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	classification, err := classifier.ClassifyAssignments(
		[]*domain.ScheduleAssignment{assignment},
		map[int64]*domain.ShiftTemplate{5: template},
	)
	require.NoError(t, err)

	assertHours(t, classification, domain.BaseRegular, false, "4")
}

func TestClassifyRejectsEndBeforeStart(t *testing.T) {
	assignment := &domain.ScheduleAssignment{
		ID:         1,
		EmployeeID: 7,
		StartDate:  date(2025, time.January, 10),
		EndDate:    timePtr(date(2025, time.January, 6)),
	}

	classifier := NewClassifier(DefaultConfig(), NewSnapshot(nil, nil))
	_, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
