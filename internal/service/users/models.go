package users

import "github.com/m04kA/SMC-SalonService/internal/domain"

// CreateRequest данные новой учетной записи
type CreateRequest struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Role     domain.Role
}

// UpdateRequest новые значения профиля; пустые поля не меняются
type UpdateRequest struct {
	Name    string
	Surname string
	Email   string
	Role    domain.Role
	Active  *bool
}
