package prompt

import "errors"

var (
	// ErrCancelled возвращается, когда пользователь прервал ввод (Ctrl+C, Ctrl+D)
	ErrCancelled = errors.New("prompt: cancelled")

	// ErrTerminal возвращается, когда терминал недоступен для ввода
	ErrTerminal = errors.New("prompt: terminal error")

	// ErrNoOptions возвращается при выборе из пустого списка
	ErrNoOptions = errors.New("prompt: no options to choose from")
)
