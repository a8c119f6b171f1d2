package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pendiente"
	StatusConfirmed AppointmentStatus = "confirmado"
	StatusCompleted AppointmentStatus = "realizado"
	StatusCancelled AppointmentStatus = "cancelado"
)

// AllStatuses lists every status in lifecycle order
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ParseAppointmentStatus converts a stored value into a status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no transition may leave the status
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the lifecycle allows moving from one status to another
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Appointment is a booking by one client for one slot
type Appointment struct {
	ID          int64
	ClientID    int64
	ScheduledAt time.Time
	Status      AppointmentStatus
	Total       decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TransitionTo moves the appointment to the given status or returns *InvalidTransitionError
func (a *Appointment) TransitionTo(to AppointmentStatus) error {
	if !CanTransition(a.Status, to) {
		return &InvalidTransitionError{From: a.Status, To: to}
	}
	a.Status = to
	return nil
}

// LineItem is one service included in an appointment with the price charged at booking time
type LineItem struct {
	AppointmentID int64
	ServiceID     int64
	ServiceName   string
	ChargedPrice  decimal.Decimal
}

// SumLineItems adds up charged prices
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.ChargedPrice)
	}
	return total
}

// AppointmentView is an appointment joined with its client and a service summary
type AppointmentView struct {
	Appointment

	ClientName    string
	ClientSurname string
	ClientEmail   string
	Services      string
}

// ClientFullName returns "Name Surname"
func (v *AppointmentView) ClientFullName() string {
	return v.ClientName + " " + v.ClientSurname
}

// AppointmentFilter narrows appointment listings; nil fields are not applied
type AppointmentFilter struct {
	Status   *AppointmentStatus
	ClientID *int64
	From     *time.Time // inclusive
	To       *time.Time // exclusive
}

// StatusSummary aggregates appointments of one status
type StatusSummary struct {
	Status AppointmentStatus
	Count  int
	Amount decimal.Decimal
}
