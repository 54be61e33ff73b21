package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeType is one entry of the payroll catalog mapping a classification
// code to its display name and surcharge percentage.
type OvertimeType struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	Version    int32           `json:"-"`
}
