package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис жизненного цикла турно
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса турно
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Get получает турно с клиентом и услугами
func (s *Service) Get(ctx context.Context, id int64) (*domain.AppointmentView, error) {
	view, err := s.appointmentRepo.GetView(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}
	return view, nil
}

// List получает турно по фильтру
func (s *Service) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.AppointmentView, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *filter.Status)
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: empty period", ErrInvalidInput)
	}

	views, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return views, nil
}

// ListPendingForClient получает ожидающие турно клиента
func (s *Service) ListPendingForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error) {
	return s.List(ctx, domain.AppointmentFilter{
		Status:   ptr.Ptr(domain.StatusPending),
		ClientID: ptr.Ptr(clientID),
	})
}

// ListForClient получает все турно клиента
func (s *Service) ListForClient(ctx context.Context, clientID int64) ([]*domain.AppointmentView, error) {
	return s.List(ctx, domain.AppointmentFilter{ClientID: ptr.Ptr(clientID)})
}

// LineItems получает строки турно
func (s *Service) LineItems(ctx context.Context, id int64) ([]domain.LineItem, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, id); err != nil {
		return nil, s.mapRepoError("LineItems", id, err)
	}

	items, err := s.appointmentRepo.LineItems(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("LineItems", id, err)
	}
	return items, nil
}

// Transition переводит турно в статус to, если это допускает жизненный цикл.
// Строка турно блокируется до конца транзакции.
func (s *Service) Transition(ctx context.Context, id int64, to domain.AppointmentStatus) (*domain.Appointment, error) {
	return s.transition(ctx, id, to, nil)
}

// Confirm отмечает приход клиента: pendiente -> confirmado
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.Transition(ctx, id, domain.StatusConfirmed)
}

// Complete отмечает оплату: confirmado -> realizado
func (s *Service) Complete(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.Transition(ctx, id, domain.StatusCompleted)
}

// Cancel отменяет ожидающее или подтвержденное турно
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.Transition(ctx, id, domain.StatusCancelled)
}

// CancelByClient отменяет собственное ожидающее турно клиента
func (s *Service) CancelByClient(ctx context.Context, clientID, id int64) (*domain.Appointment, error) {
	return s.transition(ctx, id, domain.StatusCancelled, func(a *domain.Appointment) error {
		if a.ClientID != clientID {
			s.logger.Warn("CancelByClient: client=%d is not the owner of appointment id=%d", clientID, id)
			return ErrAccessDenied
		}
		if a.Status != domain.StatusPending {
			s.logger.Warn("CancelByClient: appointment id=%d is %s", id, a.Status)
			return ErrCannotCancel
		}
		return nil
	})
}

func (s *Service) transition(
	ctx context.Context,
	id int64,
	to domain.AppointmentStatus,
	guard func(a *domain.Appointment) error,
) (*domain.Appointment, error) {
	s.logger.Info("Transition: appointment id=%d to %s", id, to)

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Читаем турно с блокировкой строки
		a, err := s.appointmentRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return s.mapRepoError("Transition", id, err)
		}

		// 2. Дополнительные проверки вызывающего
		if guard != nil {
			if err := guard(a); err != nil {
				return err
			}
		}

		// 3. Проверяем допустимость перехода
		from := a.Status
		if err := a.TransitionTo(to); err != nil {
			s.logger.Warn("Transition: appointment id=%d: %v", id, err)
			return err
		}

		// 4. Сохраняем новый статус
		if err := s.appointmentRepo.UpdateStatus(txCtx, id, to); err != nil {
			return s.mapRepoError("Transition", id, err)
		}

		s.logger.Info("Transition: appointment id=%d moved %s -> %s", id, from, to)
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveTransition(string(to))
	}
	return result, nil
}

// ComputeTotal суммирует зафиксированные цены строк турно
func (s *Service) ComputeTotal(ctx context.Context, id int64) (decimal.Decimal, error) {
	if _, err := s.appointmentRepo.GetByID(ctx, id); err != nil {
		return decimal.Zero, s.mapRepoError("ComputeTotal", id, err)
	}

	sum, err := s.appointmentRepo.SumLineItems(ctx, id)
	if err != nil {
		return decimal.Zero, s.mapRepoError("ComputeTotal", id, err)
	}
	return sum, nil
}

// VerifyTotal сверяет сохраненную сумму турно с суммой строк
func (s *Service) VerifyTotal(ctx context.Context, id int64) (*TotalCheck, error) {
	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("VerifyTotal", id, err)
	}

	sum, err := s.appointmentRepo.SumLineItems(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("VerifyTotal", id, err)
	}

	check := &TotalCheck{Stored: a.Total, Computed: sum, Consistent: a.Total.Equal(sum)}
	if !check.Consistent {
		s.logger.Warn("VerifyTotal: appointment id=%d stored=%s computed=%s",
			id, a.Total.StringFixed(2), sum.StringFixed(2))
	}
	return check, nil
}

// Delete удаляет турно вместе со строками
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}
	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// Summary считает количество и сумму турно по статусам за период
func (s *Service) Summary(ctx context.Context, filter domain.AppointmentFilter) ([]domain.StatusSummary, error) {
	summary, err := s.appointmentRepo.Summary(ctx, filter)
	if err != nil {
		s.logger.Error("Summary: repository error: %v", err)
		return nil, fmt.Errorf("%w: Summary - repository error: %v", ErrInternal, err)
	}
	return summary, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
