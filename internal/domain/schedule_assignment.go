package domain

import (
	"time"
)

type TimeBlock struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleDay is one materialized calendar day of an assignment. A day with
// zero time blocks is an explicit non-work day and must not fall back to the
// template.
type ScheduleDay struct {
	ID        int64       `json:"id"`
	Date      time.Time   `json:"date"`
	DayOfWeek int32       `json:"dayOfWeek"`
	Blocks    []TimeBlock `json:"blocks"`
}

// ScheduleAssignment binds an employee to a shift template over a date range.
// A nil EndDate is read as EndDate = StartDate when walking days.
type ScheduleAssignment struct {
	ID              int64         `json:"id"`
	EmployeeID      int64         `json:"employeeID"`
	ShiftTemplateID int64         `json:"shiftTemplateID"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         *time.Time    `json:"endDate"`
	Days            []ScheduleDay `json:"days"`
	CreatedAt       time.Time     `json:"createdAt"`
	Version         int32         `json:"-"`
}

// EffectiveEndDate resolves the nil-EndDate convention.
func (a *ScheduleAssignment) EffectiveEndDate() time.Time {
	if a.EndDate == nil {
		return a.StartDate
	}
	return *a.EndDate
}

// DayFor returns the materialized day for the given date, or nil if the date
// was never materialized.
func (a *ScheduleAssignment) DayFor(date time.Time) *ScheduleDay {
	y, m, d := date.Date()
	for i := range a.Days {
		dy, dm, dd := a.Days[i].Date.Date()
		if dy == y && dm == m && dd == d {
			return &a.Days[i]
		}
	}
	return nil
}
