package domain

import (
	"time"
)

// Exemption reasons with engine-level meaning. ReasonNoTrabajar suppresses
// day generation entirely; ReasonNoAplicarRecargo keeps the day but strips
// its holiday surcharge during classification.
const (
	ReasonNoTrabajar       = "NO_TRABAJAR"
	ReasonNoAplicarRecargo = "NO_APLICAR_RECARGO"
)

type Holiday struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

// SegmentOverride replaces the start/end of the template segment whose
// derived name (Mañana/Tarde/Noche) matches SegmentName. Blank times keep
// the template value.
type SegmentOverride struct {
	SegmentName string `json:"segmentName"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// HolidayDecision is a per-date instruction supplied at assignment creation.
// It is consumed by day generation and never persisted as-is.
type HolidayDecision struct {
	HolidayDate        time.Time         `json:"holidayDate"`
	ApplyHolidayCharge bool              `json:"applyHolidayCharge"`
	ExemptionReason    string            `json:"exemptionReason,omitempty"`
	SegmentOverrides   []SegmentOverride `json:"segmentOverrides,omitempty"`
}

type HolidayExemption struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employeeID"`
	Date        time.Time `json:"date"`
	HolidayName string    `json:"holidayName"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"createdAt"`
}
