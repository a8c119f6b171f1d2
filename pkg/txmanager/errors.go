package txmanager

import "errors"

var (
	// ErrBeginTx возвращается, если не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается, если не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")

	// ErrRollback возвращается, если откат транзакции тоже завершился ошибкой
	ErrRollback = errors.New("txmanager: failed to rollback transaction")
)
