package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AvailableSlotsResponse свободные часы дня
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует свободные слоты в HTTP response
func FromUseCaseResponse(date time.Time, hours []time.Time) *AvailableSlotsResponse {
	slots := make([]string, len(hours))
	for i, h := range hours {
		slots[i] = h.Format(domain.TimeFormat)
	}

	return &AvailableSlotsResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: slots,
	}
}

// ParseDate разбирает дату YYYY-MM-DD в часовом поясе салона
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, dateStr, loc)
}
