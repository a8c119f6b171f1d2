package menus

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Menu главное меню роли; возвращается при выходе из сессии
type Menu func(ctx context.Context, s *Session) error

// Route выбирает меню по роли пользователя
func (a *App) Route(role domain.Role) (Menu, error) {
	switch role {
	case domain.RoleAdmin:
		return a.adminMenu, nil
	case domain.RoleReceptionist:
		return a.receptionistMenu, nil
	case domain.RoleClient:
		return a.clientMenu, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}
