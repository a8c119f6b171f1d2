package checkout_appointment

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Response результат оплаты турно
type Response struct {
	Appointment   *domain.AppointmentView
	Items         []domain.LineItem
	ComputedTotal decimal.Decimal
	TotalMismatch bool
	ReceiptPath   string
}
