package checkout_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/integrations/receipt"
)

// UseCase use case оплаты турно и выдачи чека
type UseCase struct {
	appointmentRepo AppointmentRepository
	receipts        ReceiptGenerator
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	receipts ReceiptGenerator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		receipts:        receipts,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute переводит турно confirmado -> realizado и формирует чек.
// Оплата фиксируется до печати: при сбое печати возвращается ответ вместе с ErrReceiptFailed.
func (uc *UseCase) Execute(ctx context.Context, id int64) (*Response, error) {
	uc.logger.Info("Checkout: appointment id=%d", id)

	// 1. Валидация входных данных
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	// 2. Фиксируем оплату в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		a, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return uc.mapRepoError(id, err)
		}

		if err := a.TransitionTo(domain.StatusCompleted); err != nil {
			uc.logger.Warn("Checkout: appointment id=%d: %v", id, err)
			return err
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusCompleted); err != nil {
			return uc.mapRepoError(id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObserveTransition(string(domain.StatusCompleted))
	}

	// 3. Собираем данные чека и сверяем сумму
	resp, err := uc.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReceiptFailed, err)
	}

	// 4. Печатаем чек
	path, err := uc.receipts.Generate(ctx, toReceipt(resp))
	uc.observeReceipt(err == nil)
	if err != nil {
		uc.logger.Error("Checkout: receipt for appointment id=%d failed: %v", id, err)
		return resp, fmt.Errorf("%w: %v", ErrReceiptFailed, err)
	}
	resp.ReceiptPath = path

	uc.logger.Info("Checkout: appointment id=%d completed, total=%s, receipt=%s",
		id, resp.Appointment.Total.StringFixed(2), path)
	return resp, nil
}

// Reprint заново формирует чек оплаченного турно
func (uc *UseCase) Reprint(ctx context.Context, id int64) (*Response, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	resp, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if resp.Appointment.Status != domain.StatusCompleted {
		return nil, ErrNotCompleted
	}

	path, err := uc.receipts.Generate(ctx, toReceipt(resp))
	uc.observeReceipt(err == nil)
	if err != nil {
		uc.logger.Error("Reprint: receipt for appointment id=%d failed: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.ReceiptPath = path

	return resp, nil
}

func (uc *UseCase) load(ctx context.Context, id int64) (*Response, error) {
	view, err := uc.appointmentRepo.GetView(ctx, id)
	if err != nil {
		return nil, uc.mapRepoError(id, err)
	}

	items, err := uc.appointmentRepo.LineItems(ctx, id)
	if err != nil {
		return nil, uc.mapRepoError(id, err)
	}

	computed, err := uc.appointmentRepo.SumLineItems(ctx, id)
	if err != nil {
		return nil, uc.mapRepoError(id, err)
	}

	mismatch := !computed.Equal(view.Total)
	if mismatch {
		uc.logger.Warn("Checkout: appointment id=%d stored total %s differs from line items %s",
			id, view.Total.StringFixed(2), computed.StringFixed(2))
	}

	return &Response{
		Appointment:   view,
		Items:         items,
		ComputedTotal: computed,
		TotalMismatch: mismatch,
	}, nil
}

func (uc *UseCase) observeReceipt(ok bool) {
	if uc.metrics != nil {
		uc.metrics.ObserveReceipt(ok)
	}
}

func (uc *UseCase) mapRepoError(id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		uc.logger.Warn("Checkout: appointment id=%d not found", id)
		return ErrAppointmentNotFound
	}
	uc.logger.Error("Checkout: repository error for appointment id=%d: %v", id, err)
	return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
}

// toReceipt печатает сохраненную сумму турно: она зафиксирована при записи
func toReceipt(resp *Response) *receipt.Receipt {
	items := make([]receipt.Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, receipt.Item{Name: item.ServiceName, Price: item.ChargedPrice})
	}

	return &receipt.Receipt{
		AppointmentID: resp.Appointment.ID,
		ClientName:    resp.Appointment.ClientName,
		ClientSurname: resp.Appointment.ClientSurname,
		ScheduledAt:   resp.Appointment.ScheduledAt,
		Items:         items,
		Total:         resp.Appointment.Total,
	}
}
