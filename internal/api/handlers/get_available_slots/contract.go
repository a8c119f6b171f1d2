package get_available_slots

import (
	"context"
	"time"
)

type SlotsUseCase interface {
	Hours(ctx context.Context, date time.Time) ([]time.Time, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
