package domain

import "time"

// Default slot window values
const (
	DefaultOpenHour        = 9
	DefaultCloseHour       = 18 // last slot starts at 18:00
	DefaultSlotCapacity    = 3
	DefaultHorizonDays     = 5
	DefaultExcludedWeekday = time.Sunday
)

// Business validation constants
const (
	MinNameLength        = 2
	MaxNameLength        = 50
	MaxServiceNameLength = 100
	MinPasswordLength    = 6
	MaxPriceScale        = 2
	MaxPriceDigits       = 10 // NUMERIC(12,2)
)

// Time format constants
const (
	TimeFormat        = "15:04"            // HH:MM
	DateFormat        = "2006-01-02"       // YYYY-MM-DD
	DisplayDate       = "02/01/2006"       // dd/mm/YYYY
	DisplayDateTime   = "02/01/2006 15:04" // dd/mm/YYYY HH:MM
	StorageTimeLayout = "2006-01-02 15:04:05"
)
