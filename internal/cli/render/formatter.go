package render

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Locale язык интерфейса
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

var weekdays = map[Locale][7]string{
	LocaleES: {"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"},
	LocaleEN: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

var statusLabels = map[Locale]map[domain.AppointmentStatus]string{
	LocaleES: {
		domain.StatusPending:   "Pendiente",
		domain.StatusConfirmed: "Confirmado",
		domain.StatusCompleted: "Realizado",
		domain.StatusCancelled: "Cancelado",
	},
	LocaleEN: {
		domain.StatusPending:   "Pending",
		domain.StatusConfirmed: "Confirmed",
		domain.StatusCompleted: "Completed",
		domain.StatusCancelled: "Cancelled",
	},
}

var roleLabels = map[Locale]map[domain.Role]string{
	LocaleES: {
		domain.RoleAdmin:        "Administrador",
		domain.RoleReceptionist: "Recepcionista",
		domain.RoleClient:       "Cliente",
	},
	LocaleEN: {
		domain.RoleAdmin:        "Administrator",
		domain.RoleReceptionist: "Receptionist",
		domain.RoleClient:       "Client",
	},
}

// Formatter форматирует даты и суммы в часовом поясе и языке салона.
// Передается явно, глобальная локаль процесса не меняется.
type Formatter struct {
	Location *time.Location
	Locale   Locale
	Currency string
}

// NewFormatter создает форматтер; неизвестная локаль заменяется на es
func NewFormatter(loc *time.Location, locale, currency string) Formatter {
	if loc == nil {
		loc = time.Local
	}
	l := Locale(locale)
	if _, ok := weekdays[l]; !ok {
		l = LocaleES
	}
	return Formatter{Location: loc, Locale: l, Currency: currency}
}

func (f Formatter) in(t time.Time) time.Time {
	if f.Location == nil {
		return t
	}
	return t.In(f.Location)
}

// Weekday название дня недели
func (f Formatter) Weekday(t time.Time) string {
	return weekdays[f.locale()][f.in(t).Weekday()]
}

// Day "Lunes 20/10/2026"
func (f Formatter) Day(t time.Time) string {
	return fmt.Sprintf("%s %s", f.Weekday(t), f.in(t).Format(domain.DisplayDate))
}

// Hour "09:00"
func (f Formatter) Hour(t time.Time) string {
	return f.in(t).Format(domain.TimeFormat)
}

// DateTime "20/10/2026 09:00"
func (f Formatter) DateTime(t time.Time) string {
	return f.in(t).Format(domain.DisplayDateTime)
}

// Money "$1300.00"
func (f Formatter) Money(d decimal.Decimal) string {
	return f.Currency + d.StringFixed(domain.MaxPriceScale)
}

// Status название статуса на языке интерфейса
func (f Formatter) Status(s domain.AppointmentStatus) string {
	if label, ok := statusLabels[f.locale()][s]; ok {
		return label
	}
	return string(s)
}

// Role название роли на языке интерфейса
func (f Formatter) Role(r domain.Role) string {
	if label, ok := roleLabels[f.locale()][r]; ok {
		return label
	}
	return string(r)
}

// Active "Sí"/"No"
func (f Formatter) Active(active bool) string {
	switch {
	case active && f.locale() == LocaleEN:
		return "Yes"
	case active:
		return "Sí"
	default:
		return "No"
	}
}

func (f Formatter) locale() Locale {
	if _, ok := weekdays[f.Locale]; ok {
		return f.Locale
	}
	return LocaleES
}
