package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt данные чека об оплате турно
type Receipt struct {
	AppointmentID int64
	ClientName    string
	ClientSurname string
	ScheduledAt   time.Time
	Items         []Item
	Total         decimal.Decimal
}

// Item строка чека
type Item struct {
	Name  string
	Price decimal.Decimal
}
