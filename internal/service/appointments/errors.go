package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда турно не найдено
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccessDenied возвращается, когда клиент обращается к чужому турно
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrCannotCancel возвращается, когда клиент отменяет не ожидающее турно
	ErrCannotCancel = errors.New("appointments: only pending appointments can be cancelled by the client")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
