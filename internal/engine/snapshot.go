package engine

import (
	"strconv"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// HolidayOracle answers holiday and exemption questions for the engine.
// Implementations must be immutable for the duration of one classification
// run so that a run is deterministic for a given input set.
type HolidayOracle interface {
	IsHoliday(date time.Time) bool
	HolidayName(date time.Time) string
	HasExemption(employeeID int64, date time.Time) bool
	ExemptionReason(employeeID int64, date time.Time) string
}

// Snapshot is the standard HolidayOracle: the caller fetches the holiday
// calendar and exemption set once, before invoking the engine, and wraps
// them here. No I/O happens after construction.
type Snapshot struct {
	holidays   map[string]string
	exemptions map[string]string
}

func NewSnapshot(holidays []domain.Holiday, exemptions []domain.HolidayExemption) *Snapshot {
	s := &Snapshot{
		holidays:   make(map[string]string, len(holidays)),
		exemptions: make(map[string]string, len(exemptions)),
	}
	for _, h := range holidays {
		s.holidays[DateKey(h.Date)] = h.Name
	}
	for _, e := range exemptions {
		s.exemptions[exemptionKey(e.EmployeeID, e.Date)] = e.Reason
	}
	return s
}

func (s *Snapshot) IsHoliday(date time.Time) bool {
	_, exists := s.holidays[DateKey(date)]
	return exists
}

func (s *Snapshot) HolidayName(date time.Time) string {
	return s.holidays[DateKey(date)]
}

func (s *Snapshot) HasExemption(employeeID int64, date time.Time) bool {
	_, exists := s.exemptions[exemptionKey(employeeID, date)]
	return exists
}

func (s *Snapshot) ExemptionReason(employeeID int64, date time.Time) string {
	return s.exemptions[exemptionKey(employeeID, date)]
}

// DateKey is the canonical per-day map key used across the engine.
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

func exemptionKey(employeeID int64, date time.Time) string {
	return DateKey(date) + "#" + strconv.FormatInt(employeeID, 10)
}
