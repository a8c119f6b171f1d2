package book_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInvalidSlot возвращается, когда время не совпадает со слотом расписания
	ErrInvalidSlot = errors.New("book_appointment: time is not a bookable slot")

	// ErrSlotInPast возвращается для слота сегодня или раньше
	ErrSlotInPast = errors.New("book_appointment: slot must be after today")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("book_appointment: client not found")

	// ErrClientInactive возвращается для деактивированного клиента
	ErrClientInactive = errors.New("book_appointment: client is inactive")

	// ErrNotAClient возвращается, когда пользователь не является клиентом
	ErrNotAClient = errors.New("book_appointment: user is not a client")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("book_appointment: service not found")

	// ErrServiceInactive возвращается, когда услуга снята с каталога
	ErrServiceInactive = errors.New("book_appointment: service is inactive")

	// ErrSlotFull возвращается, когда в слоте уже нет мест
	ErrSlotFull = errors.New("book_appointment: slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
