package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is matched by every *InvalidTransitionError
	ErrInvalidTransition = errors.New("domain: invalid status transition")
	ErrUnknownStatus     = errors.New("domain: unknown appointment status")
	ErrUnknownRole       = errors.New("domain: unknown role")

	ErrInvalidName     = errors.New("domain: invalid name")
	ErrInvalidEmail    = errors.New("domain: invalid email")
	ErrWeakPassword    = errors.New("domain: weak password")
	ErrInvalidPrice    = errors.New("domain: invalid price")
	ErrInvalidDuration = errors.New("domain: invalid duration")
	ErrInvalidID       = errors.New("domain: invalid id")
)

// InvalidTransitionError describes a rejected status change
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("domain: cannot move appointment from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
