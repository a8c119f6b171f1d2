package menus

import (
	"context"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

var roles = []domain.Role{domain.RoleAdmin, domain.RoleReceptionist, domain.RoleClient}

func (a *App) adminMenu(ctx context.Context, s *Session) error {
	return a.loop(ctx, s, titleAdmin, optLogout, []action{
		{label: optUsersMenu, run: a.usersMenu},
		{label: optServicesMenu, run: a.servicesMenu},
		{label: optAppointmentsMenu, run: a.appointmentsMenu},
		{label: optSummary, run: a.appointmentSummary},
		{label: optChangePassword, run: a.changePassword},
	})
}

func (a *App) usersMenu(ctx context.Context, s *Session) error {
	return a.loop(ctx, s, titleUsers, optBack, []action{
		{label: optListStaff, run: a.listStaff},
		{label: optListClients, run: a.listClients},
		{label: optCreateUser, run: a.createUser},
		{label: optEditUser, run: a.editUser},
		{label: optDeactivateUser, run: a.deactivateUser},
	})
}

func (a *App) servicesMenu(ctx context.Context, s *Session) error {
	return a.loop(ctx, s, titleServices, optBack, []action{
		{label: optListAll, run: a.listAllServices},
		{label: optCreateService, run: a.createService},
		{label: optEditService, run: a.editService},
		{label: optDeactivateSvc, run: a.deactivateService},
	})
}

func (a *App) appointmentsMenu(ctx context.Context, s *Session) error {
	actions := append(a.appointmentActions(), action{label: optDeleteAppt, run: a.deleteAppointment})
	return a.loop(ctx, s, titleAppointments, optBack, actions)
}

func (a *App) listStaff(ctx context.Context, _ *Session) error {
	list, err := a.users.ListStaff(ctx, false)
	if err != nil {
		return err
	}
	a.console.Users(list)
	return nil
}

func (a *App) listClients(ctx context.Context, _ *Session) error {
	list, err := a.users.ListClients(ctx, false)
	if err != nil {
		return err
	}
	a.console.Users(list)
	return nil
}

func (a *App) chooseRole(def domain.Role) (domain.Role, error) {
	f := a.console.Formatter()
	labels := make([]string, 0, len(roles))
	defIdx := 0
	for i, r := range roles {
		labels = append(labels, f.Role(r))
		if r == def {
			defIdx = i
		}
	}

	idx, err := a.prompt.Select(msgChooseRole, labels, defIdx)
	if err != nil {
		return "", err
	}
	return roles[idx], nil
}

func (a *App) createUser(ctx context.Context, s *Session) error {
	role, err := a.chooseRole(domain.RoleReceptionist)
	if err != nil {
		return err
	}

	req, err := a.askProfile(role)
	if err != nil {
		return err
	}

	created, err := a.users.Create(ctx, req)
	if err != nil {
		return err
	}

	s.log.Info("Created user id=%d role=%s", created.ID, created.Role)
	a.console.Success(msgUserCreated, created.FullName(), created.ID)
	return nil
}

// editUser изменение профиля; Enter оставляет текущее значение
func (a *App) editUser(ctx context.Context, s *Session) error {
	id, err := a.askID(msgUserID)
	if err != nil {
		return err
	}

	current, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}
	a.console.Users([]*domain.User{current})
	a.console.Info(msgKeepHint)

	name, err := prompt.AskValid(a.prompt, a.console, msgName, current.Name, domain.ValidatePersonName)
	if err != nil {
		return err
	}
	surname, err := prompt.AskValid(a.prompt, a.console, msgSurname, current.Surname, domain.ValidatePersonName)
	if err != nil {
		return err
	}
	email, err := prompt.AskValid(a.prompt, a.console, msgEmail, current.Email, domain.ValidateEmail)
	if err != nil {
		return err
	}
	role, err := a.chooseRole(current.Role)
	if err != nil {
		return err
	}
	active, err := a.prompt.Confirm(msgActive, current.Active)
	if err != nil {
		return err
	}

	updated, err := a.users.Update(ctx, id, &users.UpdateRequest{
		Name:    name,
		Surname: surname,
		Email:   email,
		Role:    role,
		Active:  ptr.Ptr(active),
	})
	if err != nil {
		return err
	}

	s.log.Info("Updated user id=%d", id)
	a.console.Success(msgUserUpdated, updated.FullName())
	return nil
}

func (a *App) deactivateUser(ctx context.Context, s *Session) error {
	id, err := a.askID(msgUserID)
	if err != nil {
		return err
	}

	u, err := a.users.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmDeactUsr, u.FullName()), false)
	if err != nil || !ok {
		return err
	}

	if err := a.users.Deactivate(ctx, id); err != nil {
		return err
	}

	s.log.Info("Deactivated user id=%d", id)
	a.console.Success(msgUserDeactivated, id)
	return nil
}

func (a *App) listAllServices(ctx context.Context, _ *Session) error {
	list, err := a.catalog.List(ctx, false)
	if err != nil {
		return err
	}
	a.console.Services(list)
	return nil
}

func validPrice(s string) error {
	_, err := domain.ParsePrice(s)
	return err
}

func validDuration(s string) error {
	_, err := domain.ParseDuration(s)
	return err
}

func (a *App) createService(ctx context.Context, s *Session) error {
	name, err := prompt.AskValid(a.prompt, a.console, msgServiceName, "", domain.ValidateServiceName)
	if err != nil {
		return err
	}
	description, err := a.prompt.Input(msgDescription, "")
	if err != nil {
		return err
	}
	price, err := prompt.AskValid(a.prompt, a.console, msgPrice, "", validPrice)
	if err != nil {
		return err
	}
	duration, err := prompt.AskValid(a.prompt, a.console, msgDuration, "", validDuration)
	if err != nil {
		return err
	}

	created, err := a.catalog.Create(ctx, &catalog.CreateRequest{
		Name:        name,
		Description: description,
		Price:       price,
		Duration:    duration,
	})
	if err != nil {
		return err
	}

	s.log.Info("Created service id=%d", created.ID)
	a.console.Success(msgServiceCreated, created.Name, created.ID)
	return nil
}

// editService изменение услуги; Enter оставляет текущее значение
func (a *App) editService(ctx context.Context, s *Session) error {
	id, err := a.askID(msgServiceID)
	if err != nil {
		return err
	}

	current, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	a.console.Services([]*domain.Service{current})
	a.console.Info(msgKeepHint)

	currentDescription := ""
	if current.Description != nil {
		currentDescription = *current.Description
	}

	name, err := prompt.AskValid(a.prompt, a.console, msgServiceName, current.Name, domain.ValidateServiceName)
	if err != nil {
		return err
	}
	description, err := a.prompt.Input(msgDescription, currentDescription)
	if err != nil {
		return err
	}
	price, err := prompt.AskValid(a.prompt, a.console, msgPrice, current.Price.StringFixed(domain.MaxPriceScale), validPrice)
	if err != nil {
		return err
	}
	duration, err := prompt.AskValid(a.prompt, a.console, msgDuration, strconv.Itoa(current.DurationMinutes), validDuration)
	if err != nil {
		return err
	}
	active, err := a.prompt.Confirm(msgActive, current.Active)
	if err != nil {
		return err
	}

	updated, err := a.catalog.Update(ctx, id, &catalog.UpdateRequest{
		Name:        name,
		Description: ptr.Ptr(description),
		Price:       price,
		Duration:    duration,
		Active:      ptr.Ptr(active),
	})
	if err != nil {
		return err
	}

	s.log.Info("Updated service id=%d", id)
	a.console.Success(msgServiceUpdated, updated.Name)
	return nil
}

func (a *App) deactivateService(ctx context.Context, s *Session) error {
	id, err := a.askID(msgServiceID)
	if err != nil {
		return err
	}

	svc, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmDeactSvc, svc.Name), false)
	if err != nil || !ok {
		return err
	}

	if err := a.catalog.Deactivate(ctx, id); err != nil {
		return err
	}

	s.log.Info("Deactivated service id=%d", id)
	a.console.Success(msgSvcDeactivated, id)
	return nil
}

// deleteAppointment удаляет турно вместе со строками
func (a *App) deleteAppointment(ctx context.Context, s *Session) error {
	id, err := a.askID(msgAppointmentID)
	if err != nil {
		return err
	}

	view, err := a.appointments.Get(ctx, id)
	if err != nil {
		return err
	}
	a.console.Appointments([]*domain.AppointmentView{view})

	ok, err := a.prompt.Confirm(fmt.Sprintf(msgConfirmDelete, id), false)
	if err != nil || !ok {
		return err
	}

	if err := a.appointments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Warn("Deleted appointment id=%d", id)
	a.console.Success(msgDeleted, id)
	return nil
}

func (a *App) appointmentSummary(ctx context.Context, _ *Session) error {
	scope, err := a.prompt.Select(msgChooseOption, []string{optListAll, optByDate}, 0)
	if err != nil {
		return err
	}

	var filter domain.AppointmentFilter
	if scope == 1 {
		day, err := a.askDate(msgDate)
		if err != nil {
			return err
		}
		from, to := a.dayRange(day)
		filter.From, filter.To = &from, &to
	}

	summary, err := a.appointments.Summary(ctx, filter)
	if err != nil {
		return err
	}
	a.console.Summary(summary)
	return nil
}
