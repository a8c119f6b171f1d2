package propose_slots

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase предлагает клиенту даты и часы для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	window          domain.SlotWindow
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, window domain.SlotWindow, loc *time.Location, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		window:          window,
		timeProvider:    &RealTimeProvider{Location: loc},
		logger:          logger,
	}
}

// Days возвращает ленивую последовательность дат, доступных для записи
func (uc *UseCase) Days() iter.Seq[time.Time] {
	return CandidateDays(uc.timeProvider.Now(), uc.window.HorizonDays, uc.window.ExcludedWeekday)
}

// Hours возвращает свободные часы выбранной даты в порядке возрастания
func (uc *UseCase) Hours(ctx context.Context, date time.Time) ([]time.Time, error) {
	now := uc.timeProvider.Now()
	day := domain.StartOfDay(date.In(now.Location()))

	// 1. Дата должна быть не раньше завтрашнего дня
	if !day.After(domain.StartOfDay(now)) {
		uc.logger.Warn("ProposeSlots: date %s is not after today", day.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Салон не работает в выходной день
	if !uc.window.IsOpenDay(day) {
		uc.logger.Warn("ProposeSlots: salon is closed on %s", day.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 3. Исключаем уже заполненные слоты
	saturated, err := uc.appointmentRepo.ListSaturatedSlots(ctx, day, day.AddDate(0, 0, 1), uc.window.Capacity)
	if err != nil {
		uc.logger.Error("ProposeSlots: failed to list saturated slots for %s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list saturated slots: %v", ErrInternal, err)
	}

	hours := freeHours(uc.window, day, saturated)
	uc.logger.Info("ProposeSlots: date=%s, free=%d, saturated=%d", day.Format(domain.DateFormat), len(hours), len(saturated))

	return hours, nil
}
