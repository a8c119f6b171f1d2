package menus

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	errInvalidDate = errors.New(msgInvalidDate)
	errEmptySearch = errors.New(msgEmptySearch)
)

func (a *App) askID(message string) (int64, error) {
	raw, err := prompt.AskValid(a.prompt, a.console, message, "", func(s string) error {
		_, err := domain.ParsePositiveID(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return domain.ParsePositiveID(raw)
}

func (a *App) askDate(message string) (time.Time, error) {
	raw, err := prompt.AskValid(a.prompt, a.console, message, "", func(s string) error {
		_, err := a.parseDate(s)
		return err
	})
	if err != nil {
		return time.Time{}, err
	}
	return a.parseDate(raw)
}

func (a *App) parseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DisplayDate, strings.TrimSpace(raw), a.location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

// askNewPassword запрашивает пароль с проверкой сложности и повтор
func (a *App) askNewPassword() (string, string, error) {
	password, err := prompt.AskValidSecret(a.prompt, a.console, msgNewPassword, domain.ValidatePassword)
	if err != nil {
		return "", "", err
	}

	repeat, err := a.prompt.Secret(msgRepeatPassword)
	if err != nil {
		return "", "", err
	}

	return password, repeat, nil
}

// chooseAppointment выбор турно из списка; пустой список сообщается пользователю
func (a *App) chooseAppointment(message string, list []*domain.AppointmentView) (*domain.AppointmentView, error) {
	if len(list) == 0 {
		a.console.Info(msgNothingToDo)
		return nil, nil
	}

	f := a.console.Formatter()
	options := make([]string, 0, len(list)+1)
	for _, v := range list {
		options = append(options, "#"+strconv.FormatInt(v.ID, 10)+" "+f.Day(v.ScheduledAt)+" "+f.Hour(v.ScheduledAt)+
			" - "+v.ClientFullName()+" - "+v.Services+" - "+f.Money(v.Total))
	}
	options = append(options, optBack)

	idx, err := a.prompt.Select(message, options, 0)
	if err != nil {
		return nil, err
	}
	if idx == len(list) {
		return nil, nil
	}
	return list[idx], nil
}

func (a *App) showAppointments(ctx context.Context, filter domain.AppointmentFilter) error {
	list, err := a.appointments.List(ctx, filter)
	if err != nil {
		return err
	}
	a.console.Appointments(list)
	return nil
}

func (a *App) dayRange(day time.Time) (time.Time, time.Time) {
	from := domain.StartOfDay(day.In(a.location))
	return from, from.AddDate(0, 0, 1)
}
