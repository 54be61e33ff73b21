package seed

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/nominasur/turnos/backend/internal/repository"
)

func holiday(y int, m time.Month, d int, name string) domain.Holiday {
	return domain.Holiday{
		Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Name: name,
	}
}

// Calendario festivo colombiano 2025, con los festivos trasladables ya
// movidos al lunes (ley Emiliani).
var holidayCalendar = []domain.Holiday{
	holiday(2025, time.January, 1, "Año Nuevo"),
	holiday(2025, time.January, 6, "Día de los Reyes Magos"),
	holiday(2025, time.March, 24, "Día de San José"),
	holiday(2025, time.April, 17, "Jueves Santo"),
	holiday(2025, time.April, 18, "Viernes Santo"),
	holiday(2025, time.May, 1, "Día del Trabajo"),
	holiday(2025, time.June, 2, "Ascensión del Señor"),
	holiday(2025, time.June, 23, "Corpus Christi"),
	holiday(2025, time.June, 30, "San Pedro y San Pablo"),
	holiday(2025, time.July, 20, "Día de la Independencia"),
	holiday(2025, time.August, 7, "Batalla de Boyacá"),
	holiday(2025, time.August, 18, "Asunción de la Virgen"),
	holiday(2025, time.October, 13, "Día de la Raza"),
	holiday(2025, time.November, 3, "Día de Todos los Santos"),
	holiday(2025, time.November, 17, "Independencia de Cartagena"),
	holiday(2025, time.December, 8, "Día de la Inmaculada Concepción"),
	holiday(2025, time.December, 25, "Navidad"),
}

func SeedHolidayCalendar(r *repository.Repository) {
	cnt := 0
	for i := range holidayCalendar {
		h := holidayCalendar[i]
		if err := r.CreateHoliday(&h); err != nil {
			slog.Error("no se pudo insertar el festivo", slog.String("name", h.Name), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	slog.Info("calendario festivo insertado", slog.Int("count", cnt))
}

func overtimeType(code, name string, percentage int64) domain.OvertimeType {
	return domain.OvertimeType{
		Code:       code,
		Name:       name,
		Percentage: decimal.NewFromInt(percentage),
		IsActive:   true,
	}
}

// Catálogo de recargos según el Código Sustantivo del Trabajo. Los
// porcentajes son metadatos de nómina, el motor no los usa para calcular.
var overtimeCatalog = []domain.OvertimeType{
	overtimeType("EXTRA_DIURNA", "Hora Extra Diurna", 25),
	overtimeType("EXTRA_NOCTURNA", "Hora Extra Nocturna", 75),
	overtimeType("DOMINICAL_DIURNA", "Hora Dominical Diurna", 75),
	overtimeType("DOMINICAL_NOCTURNA", "Hora Dominical Nocturna", 110),
	overtimeType("FESTIVO_DIURNA", "Hora Festiva Diurna", 75),
	overtimeType("FESTIVO_NOCTURNA", "Hora Festiva Nocturna", 110),
	overtimeType("FESTIVO_DOMINICAL_DIURNA", "Hora Festiva Dominical Diurna", 75),
	overtimeType("FESTIVO_DOMINICAL_NOCTURNA", "Hora Festiva Dominical Nocturna", 110),
	overtimeType("EXTRA_FESTIVO_DIURNA", "Hora Extra Festiva Diurna", 100),
	overtimeType("EXTRA_FESTIVO_NOCTURNA", "Hora Extra Festiva Nocturna", 150),
	overtimeType("EXTRA_DOMINICAL_DIURNA", "Hora Extra Dominical Diurna", 100),
	overtimeType("EXTRA_DOMINICAL_NOCTURNA", "Hora Extra Dominical Nocturna", 150),
	overtimeType("EXTRA_FESTIVO_DOMINICAL_DIURNA", "Hora Extra Festiva Dominical Diurna", 100),
	overtimeType("EXTRA_FESTIVO_DOMINICAL_NOCTURNA", "Hora Extra Festiva Dominical Nocturna", 150),
}

func SeedOvertimeCatalog(r *repository.Repository) {
	cnt := 0
	for i := range overtimeCatalog {
		ot := overtimeCatalog[i]
		if err := r.CreateOvertimeType(&ot); err != nil {
			slog.Error("no se pudo insertar el tipo de hora extra", slog.String("code", ot.Code), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	slog.Info("catálogo de tipos de horas extra insertado", slog.Int("count", cnt))
}
