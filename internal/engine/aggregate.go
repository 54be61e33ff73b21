package engine

import (
	"strings"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/shopspring/decimal"
)

// GroupTotals is the aggregated payroll view of one assignment group.
// FestivoHours is a reporting overlay: those hours already live inside
// RegularHours and are excluded from TotalHours to avoid double counting.
type GroupTotals struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	FestivoHours  decimal.Decimal
	TotalHours    decimal.Decimal
	AssignedHours decimal.Decimal

	PredominantOvertime *domain.OvertimeType
	PredominantFestivo  *domain.OvertimeType
}

// AggregateGroup derives subtotals from a classification and selects the
// predominant overtime and holiday codes: largest hours first, then the
// fixed priority table. A group without qualifying codes gets nil
// predominants (rendered as "Normal" upstream).
func AggregateGroup(classification Classification, catalog []domain.OvertimeType) GroupTotals {
	totals := GroupTotals{
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		FestivoHours:  decimal.Zero,
	}

	var (
		bestOvertime    string
		bestOvertimeHrs decimal.Decimal
		bestFestivo     string
		bestFestivoHrs  decimal.Decimal
	)

	for code, hours := range classification {
		switch {
		case code.IsRegular():
			totals.RegularHours = totals.RegularHours.Add(hours)
		case code.IsOvertime():
			totals.OvertimeHours = totals.OvertimeHours.Add(hours)
		case code.IsFestivo():
			totals.FestivoHours = totals.FestivoHours.Add(hours)
		}

		if hours.IsPositive() && strings.HasPrefix(string(code.Base), "EXTRA") {
			if better(code.Code(), hours, bestOvertime, bestOvertimeHrs, domain.OvertimePriority) {
				bestOvertime = code.Code()
				bestOvertimeHrs = hours
			}
		}
		if hours.IsPositive() && code.IsFestivo() {
			if better(code.Code(), hours, bestFestivo, bestFestivoHrs, domain.FestivoPriority) {
				bestFestivo = code.Code()
				bestFestivoHrs = hours
			}
		}
	}

	totals.TotalHours = totals.RegularHours.Add(totals.OvertimeHours)
	totals.AssignedHours = totals.RegularHours.Add(totals.FestivoHours)

	if bestOvertime != "" {
		totals.PredominantOvertime = ResolveOvertimeType(catalog, bestOvertime)
	}
	if bestFestivo != "" {
		totals.PredominantFestivo = ResolveOvertimeType(catalog, bestFestivo)
	}

	return totals
}

func better(code string, hours decimal.Decimal, currentCode string, currentHours decimal.Decimal, priority func(string) int) bool {
	if currentCode == "" {
		return true
	}
	if !hours.Equal(currentHours) {
		return hours.GreaterThan(currentHours)
	}
	return priority(code) > priority(currentCode)
}

// ResolveOvertimeType looks a code up in the live catalog. When the catalog
// is missing the exact code the classification still has to render, so a
// synthesized entry with a humanized name is returned instead.
func ResolveOvertimeType(catalog []domain.OvertimeType, code string) *domain.OvertimeType {
	for i := range catalog {
		if catalog[i].Code == code && catalog[i].IsActive {
			return &catalog[i]
		}
	}

	return &domain.OvertimeType{
		Code: code,
		Name: humanizeCode(code),
	}
}

func humanizeCode(code string) string {
	words := strings.Split(strings.ToLower(code), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
