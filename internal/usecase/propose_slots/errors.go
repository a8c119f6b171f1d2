package propose_slots

import "errors"

var (
	// ErrInvalidDate возвращается для сегодняшней или прошедшей даты
	ErrInvalidDate = errors.New("propose_slots: date must be after today")

	// ErrDayClosed возвращается для выходного дня салона
	ErrDayClosed = errors.New("propose_slots: salon is closed on this day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("propose_slots: internal error")
)
