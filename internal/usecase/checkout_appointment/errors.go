package checkout_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("checkout_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда турно не найдено
	ErrAppointmentNotFound = errors.New("checkout_appointment: appointment not found")

	// ErrNotCompleted возвращается при повторной печати чека неоплаченного турно
	ErrNotCompleted = errors.New("checkout_appointment: appointment is not completed")

	// ErrReceiptFailed возвращается, если оплата сохранена, но чек сформировать не удалось
	ErrReceiptFailed = errors.New("checkout_appointment: payment recorded but receipt failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("checkout_appointment: internal error")
)
