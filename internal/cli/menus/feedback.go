package menus

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/cli/prompt"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-SalonService/internal/usecase/checkout_appointment"
	"github.com/m04kA/SMC-SalonService/internal/usecase/propose_slots"
)

// report сообщает пользователю об ошибке действия и пишет ее в лог
func (a *App) report(s *Session, op string, err error) {
	if errors.Is(err, prompt.ErrCancelled) {
		a.console.Info(msgCancelled)
		return
	}

	if isInternal(err) {
		s.log.Error("%s: %v", op, err)
	} else {
		s.log.Warn("%s: %v", op, err)
	}

	a.console.Error(a.describe(err))
}

func isInternal(err error) bool {
	for _, target := range []error{
		appointments.ErrInternal,
		catalog.ErrInternal,
		users.ErrInternal,
		book_appointment.ErrInternal,
		checkout_appointment.ErrInternal,
		propose_slots.ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// describe переводит ошибку в сообщение для пользователя
func (a *App) describe(err error) string {
	var transition *domain.InvalidTransitionError
	f := a.console.Formatter()

	switch {
	case errors.As(err, &transition):
		return fmt.Sprintf("El turno está %s y no puede pasar a %s.", f.Status(transition.From), f.Status(transition.To))
	case errors.Is(err, book_appointment.ErrSlotFull):
		return "El horario seleccionado ya no tiene lugares disponibles."
	case errors.Is(err, book_appointment.ErrSlotInPast),
		errors.Is(err, book_appointment.ErrInvalidSlot),
		errors.Is(err, propose_slots.ErrInvalidDate):
		return "El horario elegido no es válido: solo se reservan turnos a partir de mañana, en horas exactas."
	case errors.Is(err, propose_slots.ErrDayClosed):
		return "El salón no atiende ese día."
	case errors.Is(err, book_appointment.ErrClientInactive):
		return "La cuenta del cliente está inactiva."
	case errors.Is(err, book_appointment.ErrNotAClient):
		return "Solo los clientes pueden solicitar turnos."
	case errors.Is(err, book_appointment.ErrServiceInactive):
		return "Uno de los servicios elegidos ya no está disponible."
	case errors.Is(err, appointments.ErrAccessDenied):
		return "El turno no pertenece a su cuenta."
	case errors.Is(err, appointments.ErrCannotCancel):
		return "Solo se pueden cancelar turnos pendientes."
	case errors.Is(err, checkout_appointment.ErrNotCompleted):
		return "El turno todavía no fue cobrado."
	case errors.Is(err, checkout_appointment.ErrReceiptFailed):
		return fmt.Sprintf("El cobro quedó registrado, pero no se pudo generar el recibo: %v", err)
	case errors.Is(err, appointments.ErrAppointmentNotFound),
		errors.Is(err, checkout_appointment.ErrAppointmentNotFound):
		return "No se encontró el turno."
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, book_appointment.ErrClientNotFound):
		return "No se encontró el usuario."
	case errors.Is(err, catalog.ErrServiceNotFound),
		errors.Is(err, book_appointment.ErrServiceNotFound):
		return "No se encontró el servicio."
	case errors.Is(err, users.ErrInvalidCredentials):
		return "Email o contraseña incorrectos."
	case errors.Is(err, users.ErrDuplicateEmail):
		return "Ya existe un usuario con ese email."
	case errors.Is(err, users.ErrPasswordMismatch):
		return "Las contraseñas no coinciden."
	case errors.Is(err, appointments.ErrInvalidInput),
		errors.Is(err, users.ErrInvalidInput),
		errors.Is(err, book_appointment.ErrInvalidInput),
		errors.Is(err, checkout_appointment.ErrInvalidInput),
		errors.Is(err, catalog.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidDuration):
		return fmt.Sprintf("Datos inválidos: %v", err)
	default:
		return fmt.Sprintf("No se pudo completar la operación: %v", err)
	}
}
