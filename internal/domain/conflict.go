package domain

import (
	"time"
)

// ScheduleConflict reports one employee working two overlapping clock-time
// ranges on the same calendar date. Two employees sharing a shift is not a
// conflict.
type ScheduleConflict struct {
	EmployeeID   int64     `json:"employeeID"`
	ConflictDate time.Time `json:"conflictDate"`
	Message      string    `json:"message"`
}
