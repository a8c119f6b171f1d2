package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInvalidName возвращается при пустом или слишком длинном названии
	ErrInvalidName = errors.New("catalog: invalid service name")

	// ErrInvalidPrice возвращается при некорректной цене
	ErrInvalidPrice = errors.New("catalog: invalid price")

	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("catalog: invalid duration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
