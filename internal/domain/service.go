package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry offered by the salon
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           decimal.Decimal
	DurationMinutes int
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
