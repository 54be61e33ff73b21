package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GroupStatus string

const (
	GroupStatusActive   GroupStatus = "ACTIVE"
	GroupStatusInactive GroupStatus = "INACTIVE"
)

// ScheduleAssignmentGroup folds one employee's overlapping assignments into
// the unit payroll reasons about. Totals are cached and recomputed whenever
// a member assignment changes.
type ScheduleAssignmentGroup struct {
	ID                  int64           `json:"id"`
	EmployeeID          int64           `json:"employeeID"`
	PeriodStart         time.Time       `json:"periodStart"`
	PeriodEnd           time.Time       `json:"periodEnd"`
	AssignmentIDs       []int64         `json:"assignmentIDs"`
	RegularHours        decimal.Decimal `json:"regularHours"`
	OvertimeHours       decimal.Decimal `json:"overtimeHours"`
	FestivoHours        decimal.Decimal `json:"festivoHours"`
	TotalHours          decimal.Decimal `json:"totalHours"`
	AssignedHours       decimal.Decimal `json:"assignedHours"`
	PredominantOvertime *string         `json:"predominantOvertime"`
	PredominantFestivo  *string         `json:"predominantFestivo"`
	Status              GroupStatus     `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
	Version             int32           `json:"-"`
}

// StatusFor derives ACTIVE/INACTIVE from the reference date (normally today).
func (g *ScheduleAssignmentGroup) StatusFor(today time.Time) GroupStatus {
	if g.PeriodEnd.Before(today.Truncate(24 * time.Hour)) {
		return GroupStatusInactive
	}
	return GroupStatusActive
}
