package checkout_appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/receipt"
)

// AppointmentRepository интерфейс репозитория турно
type AppointmentRepository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	GetView(ctx context.Context, id int64) (*domain.AppointmentView, error)
	LineItems(ctx context.Context, appointmentID int64) ([]domain.LineItem, error)
	SumLineItems(ctx context.Context, appointmentID int64) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// ReceiptGenerator формирует чек и возвращает путь к файлу
type ReceiptGenerator interface {
	Generate(ctx context.Context, r *receipt.Receipt) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики переходов и чеков
type Metrics interface {
	ObserveTransition(status string)
	ObserveReceipt(ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
