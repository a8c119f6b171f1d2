package propose_slots

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CandidateDays перечисляет horizon ближайших рабочих дней, начиная с завтрашнего.
// Выходной день пропускается и в счет горизонта не идет. Последовательность можно обходить повторно.
func CandidateDays(now time.Time, horizon int, excluded time.Weekday) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		day := domain.StartOfDay(now)
		for found := 0; found < horizon; {
			day = day.AddDate(0, 0, 1)
			if day.Weekday() == excluded {
				continue
			}
			if !yield(day) {
				return
			}
			found++
		}
	}
}

// freeHours оставляет слоты дня, которых нет среди заполненных
func freeHours(window domain.SlotWindow, day time.Time, saturated []time.Time) []time.Time {
	full := make(map[int]struct{}, len(saturated))
	for _, s := range saturated {
		if domain.SameDay(s, day) {
			full[s.Hour()] = struct{}{}
		}
	}

	hours := make([]time.Time, 0, window.CloseHour-window.OpenHour+1)
	for _, slot := range window.Slots(day) {
		if _, ok := full[slot.Hour()]; ok {
			continue
		}
		hours = append(hours, slot)
	}
	return hours
}
