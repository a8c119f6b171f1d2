package book_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: service %d selected twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateSlot проверяет, что слот входит в расписание и начинается не раньше завтрашнего дня
func validateSlot(window domain.SlotWindow, slot time.Time, now time.Time) error {
	if !window.Contains(slot) {
		return ErrInvalidSlot
	}

	if !domain.StartOfDay(slot).After(domain.StartOfDay(now)) {
		return ErrSlotInPast
	}

	return nil
}

// buildLineItems фиксирует цены услуг на момент записи в порядке выбора
func buildLineItems(ids []int64, services []*domain.Service) ([]domain.LineItem, error) {
	byID := make(map[int64]*domain.Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	items := make([]domain.LineItem, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		if !s.Active {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceInactive, id)
		}
		items = append(items, domain.LineItem{
			ServiceID:    s.ID,
			ServiceName:  s.Name,
			ChargedPrice: s.Price,
		})
	}
	return items, nil
}
