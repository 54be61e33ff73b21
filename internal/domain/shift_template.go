package domain

import (
	"time"
)

// ShiftTemplateSegment is one recurring worked interval inside a template.
// DayOfWeek runs 1 (Monday) to 7 (Sunday). EndTime < StartTime means the
// segment crosses midnight.
type ShiftTemplateSegment struct {
	ID           int64   `json:"id"`
	DayOfWeek    int32   `json:"dayOfWeek"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	BreakStart   *string `json:"breakStart,omitempty"`
	BreakEnd     *string `json:"breakEnd,omitempty"`
	BreakMinutes *int32  `json:"breakMinutes,omitempty"`
}

type ShiftTemplate struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Segments    []ShiftTemplateSegment `json:"segments"`
	CreatedAt   time.Time              `json:"createdAt"`
	Version     int32                  `json:"-"`
}

// SegmentsForDay returns the template segments applicable on the given
// ISO day of week, in declaration order. Split shifts produce more than one.
func (st *ShiftTemplate) SegmentsForDay(dayOfWeek int32) []ShiftTemplateSegment {
	segments := make([]ShiftTemplateSegment, 0)
	for _, segment := range st.Segments {
		if segment.DayOfWeek == dayOfWeek {
			segments = append(segments, segment)
		}
	}
	return segments
}
