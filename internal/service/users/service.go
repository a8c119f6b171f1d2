package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

// Service сервис учетных записей
type Service struct {
	repo   UserRepository
	hasher PasswordHasher
	logger Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(repo UserRepository, hasher PasswordHasher, logger Logger) *Service {
	return &Service{repo: repo, hasher: hasher, logger: logger}
}

// Authenticate проверяет email и пароль. Любая неудача выглядит одинаково для вызывающего.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Authenticate: unknown email %q", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if !u.Active {
		s.logger.Warn("Authenticate: user id=%d is inactive", u.ID)
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		s.logger.Warn("Authenticate: wrong password for user id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Authenticate: user id=%d role=%s signed in", u.ID, u.Role)
	return u, nil
}

// Create регистрирует активного пользователя
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.User, error) {
	u := &domain.User{
		Name:    strings.TrimSpace(req.Name),
		Surname: strings.TrimSpace(req.Surname),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Role:    req.Role,
		Active:  true,
	}

	// 1. Валидация входных данных
	if err := validateProfile(u); err != nil {
		s.logger.Warn("CreateUser: validation failed: %v", err)
		return nil, err
	}
	if err := domain.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Проверяем уникальность email (окончательно ее гарантирует индекс)
	if _, err := s.repo.GetByEmail(ctx, u.Email); err == nil {
		s.logger.Warn("CreateUser: email %q already registered", u.Email)
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("CreateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// 3. Хешируем пароль и сохраняем
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("CreateUser: hash error: %v", err)
		return nil, fmt.Errorf("%w: Create - hash error: %v", ErrInternal, err)
	}
	u.PasswordHash = hash

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("CreateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: created user id=%d role=%s", created.ID, created.Role)
	return created, nil
}

// Update изменяет профиль пользователя
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.Name); v != "" {
		u.Name = v
	}
	if v := strings.TrimSpace(req.Surname); v != "" {
		u.Surname = v
	}
	if v := strings.TrimSpace(req.Email); v != "" {
		u.Email = strings.ToLower(v)
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Active != nil {
		u.Active = *req.Active
	}

	if err := validateProfile(u); err != nil {
		s.logger.Warn("UpdateUser: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("UpdateUser: updated user id=%d", id)
	return u, nil
}

// Deactivate отключает учетную запись; вход становится невозможен
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return s.mapRepoError("Deactivate", id, err)
	}
	s.logger.Info("DeactivateUser: user id=%d deactivated", id)
	return nil
}

// ChangePassword задает новый пароль после проверки сложности и повтора
func (s *Service) ChangePassword(ctx context.Context, id int64, password, repeat string) error {
	if password != repeat {
		return ErrPasswordMismatch
	}
	if err := domain.ValidatePassword(password); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("ChangePassword: hash error: %v", err)
		return fmt.Errorf("%w: ChangePassword - hash error: %v", ErrInternal, err)
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return s.mapRepoError("ChangePassword", id, err)
	}

	s.logger.Info("ChangePassword: password changed for user id=%d", id)
	return nil
}

// Get получает пользователя по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}
	return u, nil
}

// GetByEmail получает пользователя по email
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByEmail: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}
	return u, nil
}

// ListStaff получает администраторов и рецепционистов
func (s *Service) ListStaff(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	return s.list(ctx, domain.UserFilter{StaffOnly: true, ActiveOnly: activeOnly})
}

// ListClients получает клиентов
func (s *Service) ListClients(ctx context.Context, activeOnly bool) ([]*domain.User, error) {
	role := domain.RoleClient
	return s.list(ctx, domain.UserFilter{Role: &role, ActiveOnly: activeOnly})
}

// SearchClients ищет клиентов по фрагменту имени или фамилии
func (s *Service) SearchClients(ctx context.Context, fragment string) ([]*domain.User, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, fmt.Errorf("%w: empty search", ErrInvalidInput)
	}

	found, err := s.repo.SearchByName(ctx, fragment, domain.RoleClient)
	if err != nil {
		s.logger.Error("SearchClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: SearchClients - repository error: %v", ErrInternal, err)
	}
	return found, nil
}

// EnsureAdmin создает администратора, если активного администратора еще нет.
// Возвращает false, если администратор уже существовал.
func (s *Service) EnsureAdmin(ctx context.Context, req *CreateRequest) (bool, error) {
	count, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		s.logger.Error("EnsureAdmin: repository error: %v", err)
		return false, fmt.Errorf("%w: EnsureAdmin - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("EnsureAdmin: %d admin(s) already exist", count)
		return false, nil
	}

	admin := *req
	admin.Role = domain.RoleAdmin
	if _, err := s.Create(ctx, &admin); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) list(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	found, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return found, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Warn("%s: user id=%d not found", op, id)
		return ErrUserNotFound
	}
	s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validateProfile(u *domain.User) error {
	if err := domain.ValidatePersonName(u.Name); err != nil {
		return fmt.Errorf("%w: name: %w", ErrInvalidInput, err)
	}
	if err := domain.ValidatePersonName(u.Surname); err != nil {
		return fmt.Errorf("%w: surname: %w", ErrInvalidInput, err)
	}
	if err := domain.ValidateEmail(u.Email); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := domain.ParseRole(string(u.Role)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}
