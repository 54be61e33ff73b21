package engine

import (
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// Segment is one raw worked interval within a calendar day, in minutes
// since midnight. End < Start means the interval wraps past midnight.
type Segment struct {
	StartMin int
	EndMin   int
}

func (s Segment) Duration() int {
	return DurationMinutes(s.StartMin, s.EndMin)
}

// ISODayOfWeek maps time.Weekday onto the 1 (Monday) .. 7 (Sunday) range
// used by shift templates.
func ISODayOfWeek(date time.Time) int32 {
	return int32((int(date.Weekday())+6)%7 + 1)
}

// ExtractSegments resolves the raw work intervals of an assignment for one
// calendar date. A materialized ScheduleDay is authoritative: it captures
// holiday overrides and manual edits, and an empty day means an explicit
// non-work day. The template is only consulted when the date was never
// materialized.
func ExtractSegments(a *domain.ScheduleAssignment, tpl *domain.ShiftTemplate, date time.Time) ([]Segment, error) {
	if day := a.DayFor(date); day != nil {
		segments := make([]Segment, 0, len(day.Blocks))
		for _, block := range day.Blocks {
			segment, err := segmentFromTimes(block.StartTime, block.EndTime)
			if err != nil {
				return nil, err
			}
			segments = append(segments, segment)
		}
		return segments, nil
	}

	if tpl == nil {
		return nil, nil
	}

	templateSegments := tpl.SegmentsForDay(ISODayOfWeek(date))
	segments := make([]Segment, 0, len(templateSegments))
	for _, ts := range templateSegments {
		segment, err := segmentFromTimes(ts.StartTime, ts.EndTime)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

func segmentFromTimes(start, end string) (Segment, error) {
	startMin, err := ParseClockMinutes(start)
	if err != nil {
		return Segment{}, err
	}
	endMin, err := ParseClockMinutes(end)
	if err != nil {
		return Segment{}, err
	}
	return Segment{StartMin: startMin, EndMin: endMin}, nil
}
