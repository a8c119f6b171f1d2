package menus

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/cli/render"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-SalonService/internal/usecase/checkout_appointment"
)

// UserService учетные записи и аутентификация
type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Create(ctx context.Context, req *users.CreateRequest) (*domain.User, error)
	Update(ctx context.Context, id int64, req *users.UpdateRequest) (*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, id int64, password, repeat string) error
	Get(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListStaff(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	ListClients(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	SearchClients(ctx context.Context, fragment string) ([]*domain.User, error)
}

// CatalogService каталог услуг
type CatalogService interface {
	Create(ctx context.Context, req *catalog.CreateRequest) (*domain.Service, error)
	Update(ctx context.Context, id int64, req *catalog.UpdateRequest) (*domain.Service, error)
	Deactivate(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}

// AppointmentService чтение и смена статусов турно
type AppointmentService interface {
	Get(ctx context.Context, id int64) (*domain.AppointmentView, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error)
	ListPendingForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error)
	ListForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error)
	LineItems(ctx context.Context, id int64) ([]domain.LineItem, error)
	Confirm(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64) (*domain.Appointment, error)
	CancelByClient(ctx context.Context, clientID, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context, filter domain.AppointmentFilter) ([]domain.StatusSummary, error)
}

// BookingUseCase запись клиента в слот
type BookingUseCase interface {
	CheckAvailability(ctx context.Context, slot time.Time) (bool, error)
	Execute(ctx context.Context, req *book_appointment.Request) (*book_appointment.Response, error)
}

// SlotsUseCase предложение дней и часов для записи
type SlotsUseCase interface {
	Days() iter.Seq[time.Time]
	Hours(ctx context.Context, date time.Time) ([]time.Time, error)
}

// CheckoutUseCase оплата турно и чеки
type CheckoutUseCase interface {
	Execute(ctx context.Context, id int64) (*checkout_appointment.Response, error)
	Reprint(ctx context.Context, id int64) (*checkout_appointment.Response, error)
}

// Console вывод в терминал
type Console interface {
	Success(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Title(text string)
	Appointments(list []*domain.AppointmentView)
	Services(list []*domain.Service)
	Users(list []*domain.User)
	LineItems(items []domain.LineItem, total decimal.Decimal)
	Summary(list []domain.StatusSummary)
	Formatter() render.Formatter
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
