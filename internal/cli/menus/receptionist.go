package menus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/internal/usecase/checkout_appointment"
)

func (a *App) receptionistMenu(ctx context.Context, s *Session) error {
	actions := a.appointmentActions()
	actions = append(actions,
		action{label: optClientLookup, run: a.clientLookup},
		action{label: optRegisterClient, run: a.registerClient},
		action{label: optListServices, run: a.listActiveServices},
		action{label: optChangePassword, run: a.changePassword},
	)
	return a.loop(ctx, s, titleReceptionist, optLogout, actions)
}

// appointmentActions операции с турно, общие для рецепции и администратора
func (a *App) appointmentActions() []action {
	return []action{
		{label: optToday, run: a.todayAppointments},
		{label: optByDate, run: a.appointmentsByDate},
		{label: optByStatus, run: a.appointmentsByStatus},
		{label: optConfirmArrival, run: a.confirmArrival},
		{label: optCheckout, run: a.checkoutAppointment},
		{label: optReprint, run: a.reprintReceipt},
		{label: optCancelAppt, run: a.cancelAppointment},
	}
}

func (a *App) todayAppointments(ctx context.Context, _ *Session) error {
	from, to := a.dayRange(a.now())
	return a.showAppointments(ctx, domain.AppointmentFilter{From: &from, To: &to})
}

func (a *App) appointmentsByDate(ctx context.Context, _ *Session) error {
	day, err := a.askDate(msgDate)
	if err != nil {
		return err
	}
	from, to := a.dayRange(day)
	return a.showAppointments(ctx, domain.AppointmentFilter{From: &from, To: &to})
}

func (a *App) appointmentsByStatus(ctx context.Context, _ *Session) error {
	status, err := a.chooseStatus()
	if err != nil {
		return err
	}
	return a.showAppointments(ctx, domain.AppointmentFilter{Status: &status})
}

func (a *App) chooseStatus() (domain.AppointmentStatus, error) {
	f := a.console.Formatter()
	labels := make([]string, 0, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		labels = append(labels, f.Status(st))
	}

	idx, err := a.prompt.Select(msgChooseStatus, labels, 0)
	if err != nil {
		return "", err
	}
	return domain.AllStatuses[idx], nil
}

// confirmArrival pendiente -> confirmado по номеру турно или по email клиента
func (a *App) confirmArrival(ctx context.Context, s *Session) error {
	how, err := a.prompt.Select(msgConfirmHow, []string{optByID, optByClientEmail, optBack}, 0)
	if err != nil {
		return err
	}

	var id int64
	switch how {
	case 0:
		id, err = a.askID(msgAppointmentID)
		if err != nil {
			return err
		}
	case 1:
		email, err := prompt.AskValid(a.prompt, a.console, msgClientEmail, "", domain.ValidateEmail)
		if err != nil {
			return err
		}
		client, err := a.users.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		pending, err := a.appointments.ListPendingForClient(ctx, client.ID)
		if err != nil {
			return err
		}
		chosen, err := a.chooseAppointment(msgChooseToConfirm, pending)
		if err != nil || chosen == nil {
			return err
		}
		id = chosen.ID
	default:
		return nil
	}

	updated, err := a.appointments.Confirm(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("Confirmed appointment id=%d", id)
	a.console.Success(msgAppointmentDone, updated.ID, a.console.Formatter().Status(updated.Status))
	return nil
}

// checkoutAppointment confirmado -> realizado и печать чека
func (a *App) checkoutAppointment(ctx context.Context, s *Session) error {
	id, err := a.askID(msgAppointmentID)
	if err != nil {
		return err
	}

	view, err := a.appointments.Get(ctx, id)
	if err != nil {
		return err
	}
	if view.Status != domain.StatusConfirmed {
		return &domain.InvalidTransitionError{From: view.Status, To: domain.StatusCompleted}
	}

	items, err := a.appointments.LineItems(ctx, id)
	if err != nil {
		return err
	}
	a.console.LineItems(items, view.Total)

	f := a.console.Formatter()
	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmCheckout, f.Money(view.Total), id), true)
	if err != nil || !ok {
		return err
	}

	resp, err := a.checkout.Execute(ctx, id)
	if errors.Is(err, checkout_appointment.ErrReceiptFailed) {
		s.log.Error("Checkout: appointment id=%d: %v", id, err)
		a.console.Warn(msgReceiptFailed, id)
		return nil
	}
	if err != nil {
		return err
	}

	if resp.TotalMismatch {
		a.console.Warn(msgTotalMismatch, f.Money(resp.ComputedTotal), f.Money(resp.Appointment.Total))
	}

	s.log.Info("Checked out appointment id=%d", id)
	a.console.Success(msgCheckedOut, id, resp.ReceiptPath)
	return nil
}

func (a *App) reprintReceipt(ctx context.Context, _ *Session) error {
	id, err := a.askID(msgAppointmentID)
	if err != nil {
		return err
	}

	resp, err := a.checkout.Reprint(ctx, id)
	if err != nil {
		return err
	}

	a.console.Success(msgReprinted, resp.ReceiptPath)
	return nil
}

func (a *App) cancelAppointment(ctx context.Context, s *Session) error {
	id, err := a.askID(msgAppointmentID)
	if err != nil {
		return err
	}

	view, err := a.appointments.Get(ctx, id)
	if err != nil {
		return err
	}
	a.console.Appointments([]*domain.AppointmentView{view})

	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmCancel, id), false)
	if err != nil || !ok {
		return err
	}

	updated, err := a.appointments.Cancel(ctx, id)
	if err != nil {
		return err
	}

	s.log.Info("Cancelled appointment id=%d", id)
	a.console.Success(msgAppointmentDone, updated.ID, a.console.Formatter().Status(updated.Status))
	return nil
}

func (a *App) clientLookup(ctx context.Context, _ *Session) error {
	fragment, err := prompt.AskValid(a.prompt, a.console, msgSearchFragment, "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errEmptySearch
		}
		return nil
	})
	if err != nil {
		return err
	}

	found, err := a.users.SearchClients(ctx, fragment)
	if err != nil {
		return err
	}
	a.console.Users(found)
	return nil
}

func (a *App) registerClient(ctx context.Context, s *Session) error {
	req, err := a.askProfile(domain.RoleClient)
	if err != nil {
		return err
	}

	created, err := a.users.Create(ctx, req)
	if err != nil {
		return err
	}

	s.log.Info("Registered client id=%d", created.ID)
	a.console.Success(msgClientRegistered, created.ID)
	return nil
}

// askProfile запрашивает данные новой учетной записи
func (a *App) askProfile(role domain.Role) (*users.CreateRequest, error) {
	name, err := prompt.AskValid(a.prompt, a.console, msgName, "", domain.ValidatePersonName)
	if err != nil {
		return nil, err
	}

	surname, err := prompt.AskValid(a.prompt, a.console, msgSurname, "", domain.ValidatePersonName)
	if err != nil {
		return nil, err
	}

	email, err := prompt.AskValid(a.prompt, a.console, msgEmail, "", domain.ValidateEmail)
	if err != nil {
		return nil, err
	}

	password, err := prompt.AskValidSecret(a.prompt, a.console, msgPassword, domain.ValidatePassword)
	if err != nil {
		return nil, err
	}

	return &users.CreateRequest{
		Name:     name,
		Surname:  surname,
		Email:    email,
		Password: password,
		Role:     role,
	}, nil
}

func (a *App) listActiveServices(ctx context.Context, _ *Session) error {
	list, err := a.catalog.List(ctx, true)
	if err != nil {
		return err
	}
	a.console.Services(list)
	return nil
}
