package appointments

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория турно
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error)
	GetView(ctx context.Context, id int64) (*domain.AppointmentView, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error)
	LineItems(ctx context.Context, appointmentID int64) ([]domain.LineItem, error)
	SumLineItems(ctx context.Context, appointmentID int64) (decimal.Decimal, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, filter domain.AppointmentFilter) ([]domain.StatusSummary, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик переходов статусов
type Metrics interface {
	ObserveTransition(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
