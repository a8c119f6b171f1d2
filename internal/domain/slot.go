package domain

import (
	"fmt"
	"time"
)

// SlotWindow describes when appointments may be booked
type SlotWindow struct {
	OpenHour        int
	CloseHour       int
	ExcludedWeekday time.Weekday
	Capacity        int
	HorizonDays     int
}

// DefaultSlotWindow returns hourly slots 09:00..18:00, closed on Sunday, 3 per slot, 5 days ahead
func DefaultSlotWindow() SlotWindow {
	return SlotWindow{
		OpenHour:        DefaultOpenHour,
		CloseHour:       DefaultCloseHour,
		ExcludedWeekday: DefaultExcludedWeekday,
		Capacity:        DefaultSlotCapacity,
		HorizonDays:     DefaultHorizonDays,
	}
}

// Validate checks that the window is usable
func (w SlotWindow) Validate() error {
	if w.OpenHour < 0 || w.CloseHour > 23 || w.OpenHour > w.CloseHour {
		return fmt.Errorf("slot window: hours %d..%d out of range", w.OpenHour, w.CloseHour)
	}
	if w.Capacity < 1 {
		return fmt.Errorf("slot window: capacity must be positive, got %d", w.Capacity)
	}
	if w.HorizonDays < 1 {
		return fmt.Errorf("slot window: horizon must be positive, got %d", w.HorizonDays)
	}
	return nil
}

// IsOpenDay returns false for the excluded weekday
func (w SlotWindow) IsOpenDay(t time.Time) bool {
	return t.Weekday() != w.ExcludedWeekday
}

// Contains reports whether t is a whole-hour slot inside the window on an open day
func (w SlotWindow) Contains(t time.Time) bool {
	if !w.IsOpenDay(t) {
		return false
	}
	if t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	return t.Hour() >= w.OpenHour && t.Hour() <= w.CloseHour
}

// Slots returns every slot of the given day in ascending order
func (w SlotWindow) Slots(day time.Time) []time.Time {
	y, m, d := day.Date()
	slots := make([]time.Time, 0, w.CloseHour-w.OpenHour+1)
	for h := w.OpenHour; h <= w.CloseHour; h++ {
		slots = append(slots, time.Date(y, m, d, h, 0, 0, 0, day.Location()))
	}
	return slots
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SlotKey maps a slot to a stable number based on its wall clock, e.g. 202610200900
func SlotKey(t time.Time) int64 {
	return int64(t.Year())*100000000 +
		int64(t.Month())*1000000 +
		int64(t.Day())*10000 +
		int64(t.Hour())*100 +
		int64(t.Minute())
}
