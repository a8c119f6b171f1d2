package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда турно не найдено
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrNotInTransaction возвращается, когда блокировка слота запрошена вне транзакции
	ErrNotInTransaction = errors.New("appointment.repository: operation requires a transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
