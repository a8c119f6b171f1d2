package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotWindow_Contains(t *testing.T) {
	w := DefaultSlotWindow()
	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.Local)

	assert.True(t, w.Contains(tuesday.Add(9*time.Hour)))
	assert.True(t, w.Contains(tuesday.Add(18*time.Hour)))
	assert.False(t, w.Contains(tuesday.Add(8*time.Hour)))
	assert.False(t, w.Contains(tuesday.Add(19*time.Hour)))
	assert.False(t, w.Contains(tuesday.Add(9*time.Hour+30*time.Minute)))

	sunday := time.Date(2026, 10, 18, 10, 0, 0, 0, time.Local)
	assert.False(t, w.Contains(sunday))
}

func TestSlotWindow_Slots(t *testing.T) {
	w := DefaultSlotWindow()
	day := time.Date(2026, 10, 20, 15, 42, 0, 0, time.Local)

	slots := w.Slots(day)
	assert.Len(t, slots, 10)
	assert.Equal(t, 9, slots[0].Hour())
	assert.Equal(t, 18, slots[len(slots)-1].Hour())
	for _, s := range slots {
		assert.True(t, w.Contains(s))
	}
}

func TestSlotWindow_Slots_WallClockOnDSTDay(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	w := DefaultSlotWindow()
	// 29.03.2026 в Мадриде переход на летнее время в 02:00
	day := time.Date(2026, 3, 29, 0, 0, 0, 0, madrid)

	slots := w.Slots(day)
	assert.Len(t, slots, 10)
	for i, s := range slots {
		assert.Equal(t, w.OpenHour+i, s.Hour())
		assert.True(t, w.Contains(s))
	}
}

func TestSlotWindow_Validate(t *testing.T) {
	assert.NoError(t, DefaultSlotWindow().Validate())

	w := DefaultSlotWindow()
	w.Capacity = 0
	assert.Error(t, w.Validate())

	w = DefaultSlotWindow()
	w.OpenHour, w.CloseHour = 19, 9
	assert.Error(t, w.Validate())
}

func TestSlotKey(t *testing.T) {
	slot := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(202610200900), SlotKey(slot))

	other := time.Date(2026, 10, 20, 9, 0, 0, 0, time.FixedZone("ART", -3*3600))
	assert.Equal(t, SlotKey(slot), SlotKey(other))
}
