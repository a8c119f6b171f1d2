package book_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request запрос на запись клиента
type Request struct {
	ClientID    int64
	ScheduledAt time.Time
	ServiceIDs  []int64
}

// Response созданное турно вместе со строками
type Response struct {
	ID          int64
	ClientID    int64
	ScheduledAt time.Time
	Status      domain.AppointmentStatus
	Total       decimal.Decimal
	Items       []domain.LineItem
	CreatedAt   time.Time
}
