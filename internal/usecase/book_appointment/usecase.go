package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

// UseCase use case записи клиента на слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	userRepo        UserRepository
	txManager       TransactionManager
	window          domain.SlotWindow
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	window domain.SlotWindow,
	loc *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		window:          window,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{Location: loc},
		logger:          logger,
	}
}

// CheckAvailability сообщает, осталось ли место в слоте.
// Результат носит справочный характер: окончательная проверка выполняется в Execute под блокировкой.
func (uc *UseCase) CheckAvailability(ctx context.Context, slot time.Time) (bool, error) {
	count, err := uc.appointmentRepo.CountPendingAtSlot(ctx, slot)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to count slot %s: %v", slot.Format(domain.DisplayDateTime), err)
		return false, fmt.Errorf("%w: failed to count slot: %v", ErrInternal, err)
	}
	return count < uc.window.Capacity, nil
}

// Execute выполняет use case записи.
// Проверка вместимости и вставка выполняются в одной транзакции под advisory-блокировкой слота,
// поэтому одновременные записи на один слот не превышают вместимость.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		uc.observe(metrics.OutcomeRejected)
		return nil, err
	}

	uc.logger.Info("BookAppointment: client=%d, slot=%s, services=%v",
		req.ClientID, req.ScheduledAt.Format(domain.DisplayDateTime), req.ServiceIDs)

	// 2. Проверяем слот относительно текущего времени
	now := uc.timeProvider.Now()
	slot := req.ScheduledAt.In(now.Location())
	if err := validateSlot(uc.window, slot, now); err != nil {
		uc.logger.Warn("BookAppointment: slot %s rejected: %v", slot.Format(domain.DisplayDateTime), err)
		uc.observe(metrics.OutcomeRejected)
		return nil, err
	}

	// 3. Проверяем клиента
	client, err := uc.userRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: client id=%d not found", req.ClientID)
			uc.observe(metrics.OutcomeRejected)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookAppointment: failed to get client id=%d: %v", req.ClientID, err)
		uc.observe(metrics.OutcomeFailed)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.Active {
		uc.logger.Warn("BookAppointment: client id=%d is inactive", req.ClientID)
		uc.observe(metrics.OutcomeRejected)
		return nil, ErrClientInactive
	}
	if client.Role != domain.RoleClient {
		uc.logger.Warn("BookAppointment: user id=%d has role %s, not a client", req.ClientID, client.Role)
		uc.observe(metrics.OutcomeRejected)
		return nil, ErrNotAClient
	}

	var result *Response

	// 4. Выполняем операции с БД в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем слот до конца транзакции
		if err := uc.appointmentRepo.LockSlot(txCtx, slot); err != nil {
			return fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
		}

		// 4.2. Проверяем вместимость
		count, err := uc.appointmentRepo.CountPendingAtSlot(txCtx, slot)
		if err != nil {
			return fmt.Errorf("%w: failed to count slot: %v", ErrInternal, err)
		}
		if count >= uc.window.Capacity {
			uc.logger.Warn("BookAppointment: slot %s is full, %d/%d taken",
				slot.Format(domain.DisplayDateTime), count, uc.window.Capacity)
			return ErrSlotFull
		}

		// 4.3. Берем услуги по текущим ценам каталога
		services, err := uc.catalogRepo.GetByIDs(txCtx, req.ServiceIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		items, err := buildLineItems(req.ServiceIDs, services)
		if err != nil {
			uc.logger.Warn("BookAppointment: %v", err)
			return err
		}

		// 4.4. Создаем турно с итоговой суммой
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:    req.ClientID,
			ScheduledAt: slot,
			Status:      domain.StatusPending,
			Total:       domain.SumLineItems(items),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		// 4.5. Сохраняем строки с зафиксированными ценами
		for i := range items {
			items[i].AppointmentID = created.ID
		}
		if err := uc.appointmentRepo.AddLineItems(txCtx, created.ID, items); err != nil {
			return fmt.Errorf("%w: failed to add line items: %v", ErrInternal, err)
		}

		result = &Response{
			ID:          created.ID,
			ClientID:    created.ClientID,
			ScheduledAt: created.ScheduledAt,
			Status:      created.Status,
			Total:       created.Total,
			Items:       items,
			CreatedAt:   created.CreatedAt,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotFull):
			uc.observe(metrics.OutcomeSlotFull)
		case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrServiceInactive):
			uc.observe(metrics.OutcomeRejected)
		default:
			uc.logger.Error("BookAppointment: failed: %v", err)
			uc.observe(metrics.OutcomeFailed)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%d, total=%s", result.ID, result.Total.StringFixed(2))
	uc.observe(metrics.OutcomeBooked)

	return result, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(outcome)
	}
}
