package menus

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
)

func (a *App) clientMenu(ctx context.Context, s *Session) error {
	return a.loop(ctx, s, titleClient, optLogout, []action{
		{label: optRequestAppointment, run: a.requestAppointment},
		{label: optMyAppointments, run: a.myAppointments},
		{label: optCancelMine, run: a.cancelMine},
		{label: optChangePassword, run: a.changePassword},
	})
}

// requestAppointment день -> час -> услуги -> подтверждение -> запись
func (a *App) requestAppointment(ctx context.Context, s *Session) error {
	f := a.console.Formatter()

	// 1. День из ближайших рабочих дней
	days := make([]time.Time, 0)
	labels := make([]string, 0)
	for day := range a.slots.Days() {
		days = append(days, day)
		labels = append(labels, f.Day(day))
	}

	dayIdx, err := a.prompt.Select(msgChooseDay, labels, 0)
	if err != nil {
		return err
	}
	day := days[dayIdx]

	// 2. Свободные часы дня
	hours, err := a.slots.Hours(ctx, day)
	if err != nil {
		return err
	}
	if len(hours) == 0 {
		a.console.Warn(msgNoHours)
		return nil
	}

	hourLabels := make([]string, 0, len(hours))
	for _, h := range hours {
		hourLabels = append(hourLabels, f.Hour(h))
	}

	hourIdx, err := a.prompt.Select(msgChooseHour, hourLabels, 0)
	if err != nil {
		return err
	}
	slot := hours[hourIdx]

	// 3. Услуги
	services, err := a.catalog.List(ctx, true)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		a.console.Warn(msgNoServices)
		return nil
	}

	serviceLabels := make([]string, 0, len(services))
	for _, svc := range services {
		serviceLabels = append(serviceLabels, svc.Name+" - "+f.Money(svc.Price))
	}

	picked, err := a.prompt.MultiSelect(msgChooseServices, serviceLabels)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(picked))
	chosen := make([]*domain.Service, 0, len(picked))
	estimate := decimal.Zero
	minutes := 0
	for _, idx := range picked {
		ids = append(ids, services[idx].ID)
		chosen = append(chosen, services[idx])
		estimate = estimate.Add(services[idx].Price)
		minutes += services[idx].DurationMinutes
	}

	// 4. Сводка и подтверждение
	a.console.Services(chosen)
	a.console.Info(msgBookingSummary, f.Money(estimate), minutes)
	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmBooking, f.Day(slot), f.Hour(slot), f.Money(estimate)), true)
	if err != nil {
		return err
	}
	if !ok {
		a.console.Info(msgCancelled)
		return nil
	}

	// 5. Запись; цены фиксируются в момент записи
	resp, err := a.booking.Execute(ctx, &book_appointment.Request{
		ClientID:    s.User.ID,
		ScheduledAt: slot,
		ServiceIDs:  ids,
	})
	if err != nil {
		return err
	}

	s.log.Info("Booked appointment id=%d at %s", resp.ID, slot.Format(domain.StorageTimeLayout))
	a.console.Success(msgBooked, resp.ID, f.Day(resp.ScheduledAt), f.Hour(resp.ScheduledAt), f.Money(resp.Total))
	a.console.LineItems(resp.Items, resp.Total)
	return nil
}

func (a *App) myAppointments(ctx context.Context, s *Session) error {
	list, err := a.appointments.ListForClient(ctx, s.User.ID)
	if err != nil {
		return err
	}
	a.console.Appointments(list)
	return nil
}

func (a *App) cancelMine(ctx context.Context, s *Session) error {
	pending, err := a.appointments.ListPendingForClient(ctx, s.User.ID)
	if err != nil {
		return err
	}

	chosen, err := a.chooseAppointment(msgChooseToCancel, pending)
	if err != nil || chosen == nil {
		return err
	}

	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmCancel, chosen.ID), false)
	if err != nil || !ok {
		return err
	}

	updated, err := a.appointments.CancelByClient(ctx, s.User.ID, chosen.ID)
	if err != nil {
		return err
	}

	a.console.Success(msgAppointmentDone, updated.ID, a.console.Formatter().Status(updated.Status))
	return nil
}

func (a *App) changePassword(ctx context.Context, s *Session) error {
	password, repeat, err := a.askNewPassword()
	if err != nil {
		return err
	}

	if err := a.users.ChangePassword(ctx, s.User.ID, password, repeat); err != nil {
		return err
	}

	a.console.Success(msgPasswordChanged)
	return nil
}
