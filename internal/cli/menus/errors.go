package menus

import "errors"

var (
	// ErrUnknownRole возвращается, когда для роли пользователя нет меню
	ErrUnknownRole = errors.New("menus: no menu for role")
)
