package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrInvalidCredentials возвращается при неверном email, пароле или неактивной учетной записи
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrDuplicateEmail возвращается, когда email уже зарегистрирован
	ErrDuplicateEmail = errors.New("users: email already registered")

	// ErrPasswordMismatch возвращается, когда повтор пароля не совпадает
	ErrPasswordMismatch = errors.New("users: passwords do not match")

	// ErrInvalidInput возвращается при некорректных данных пользователя
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
