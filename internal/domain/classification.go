package domain

// ClassificationBase is the payroll family of a classified hour.
type ClassificationBase string

const (
	BaseRegular               ClassificationBase = "REGULAR"
	BaseExtra                 ClassificationBase = "EXTRA"
	BaseFestivo               ClassificationBase = "FESTIVO"
	BaseDominical             ClassificationBase = "DOMINICAL"
	BaseFestivoDominical      ClassificationBase = "FESTIVO_DOMINICAL"
	BaseExtraFestivo          ClassificationBase = "EXTRA_FESTIVO"
	BaseExtraDominical        ClassificationBase = "EXTRA_DOMINICAL"
	BaseExtraFestivoDominical ClassificationBase = "EXTRA_FESTIVO_DOMINICAL"
)

// ClassificationCode identifies one payroll bucket. It is a closed value
// type rather than a concatenated string so that invalid combinations
// cannot be constructed by accident.
type ClassificationCode struct {
	Base  ClassificationBase
	Night bool
}

func NewClassificationCode(base ClassificationBase, night bool) ClassificationCode {
	return ClassificationCode{Base: base, Night: night}
}

// Code renders the catalog string form, e.g. EXTRA_NOCTURNA.
func (c ClassificationCode) Code() string {
	if c.Night {
		return string(c.Base) + "_NOCTURNA"
	}
	return string(c.Base) + "_DIURNA"
}

func (c ClassificationCode) String() string {
	return c.Code()
}

// IsRegular reports whether the bucket counts into the regular subtotal.
func (c ClassificationCode) IsRegular() bool {
	return c.Base == BaseRegular
}

// IsOvertime reports whether the bucket counts into the overtime subtotal.
// Sunday surcharges are paid as overtime even below the weekly cap.
func (c ClassificationCode) IsOvertime() bool {
	switch c.Base {
	case BaseExtra, BaseExtraFestivo, BaseExtraDominical, BaseExtraFestivoDominical, BaseDominical:
		return true
	}
	return false
}

// IsFestivo reports whether the bucket belongs to the holiday tracking
// overlay. Those hours are also booked under REGULAR_* and must not be
// added into the grand total a second time.
func (c ClassificationCode) IsFestivo() bool {
	return c.Base == BaseFestivo || c.Base == BaseFestivoDominical
}

// overtimePriorities breaks ties between overtime buckets with equal hours
// when picking the predominant code for a group. Higher wins. Codes not
// listed default to 0.
var overtimePriorities = map[string]int{
	"EXTRA_DOMINICAL_NOCTURNA_RECARGO_NOCTURNO": 700,
	"EXTRA_DOMINICAL_NOCTURNA":                  600,
	"EXTRA_DOMINICAL_DIURNA":                    500,
	"EXTRA_FESTIVO_NOCTURNA":                    400,
	"EXTRA_FESTIVO_DIURNA":                      300,
	"EXTRA_NOCTURNA":                            200,
	"EXTRA_DIURNA":                              100,
}

var festivoPriorities = map[string]int{
	"FESTIVO_NOCTURNA": 400,
	"FESTIVO_DIURNA":   300,
}

func OvertimePriority(code string) int {
	return overtimePriorities[code]
}

func FestivoPriority(code string) int {
	return festivoPriorities[code]
}
