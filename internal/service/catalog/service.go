package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// Service сервис каталога услуг
type Service struct {
	repo   ServiceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo ServiceRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create добавляет активную услугу в каталог
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Service, error) {
	name, price, duration, err := parseFields(req.Name, req.Price, req.Duration)
	if err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Service{
		Name:            name,
		Description:     optional(req.Description),
		Price:           price,
		DurationMinutes: duration,
		Active:          true,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d name=%q price=%s", created.ID, created.Name, created.Price.StringFixed(2))
	return created, nil
}

// Update изменяет услугу. Новая цена действует только для будущих записей.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequest) (*domain.Service, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	name, rawPrice, rawDuration := req.Name, req.Price, req.Duration
	if strings.TrimSpace(name) == "" {
		name = current.Name
	}
	if strings.TrimSpace(rawPrice) == "" {
		rawPrice = current.Price.String()
	}
	if strings.TrimSpace(rawDuration) == "" {
		rawDuration = fmt.Sprint(current.DurationMinutes)
	}

	parsedName, price, duration, err := parseFields(name, rawPrice, rawDuration)
	if err != nil {
		s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	current.Name = parsedName
	current.Price = price
	current.DurationMinutes = duration
	if req.Description != nil {
		current.Description = optional(*req.Description)
	}
	if req.Active != nil {
		current.Active = *req.Active
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("UpdateService: updated service id=%d price=%s", id, current.Price.StringFixed(2))
	return current, nil
}

// Deactivate снимает услугу с каталога; прошлые записи не меняются
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return s.mapRepoError("Deactivate", id, err)
	}
	s.logger.Info("DeactivateService: service id=%d deactivated", id)
	return nil
}

// Get получает услугу по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Get", id, err)
	}
	return svc, nil
}

// List получает каталог по алфавиту
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	services, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return services, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, catalogRepo.ErrServiceNotFound) {
		s.logger.Warn("%s: service id=%d not found", op, id)
		return ErrServiceNotFound
	}
	s.logger.Error("%s: repository error for service id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func parseFields(rawName, rawPrice, rawDuration string) (string, decimal.Decimal, int, error) {
	name := strings.TrimSpace(rawName)
	if err := domain.ValidateServiceName(name); err != nil {
		return "", decimal.Zero, 0, fmt.Errorf("%w: %w", ErrInvalidName, err)
	}

	price, err := domain.ParsePrice(rawPrice)
	if err != nil {
		return "", decimal.Zero, 0, fmt.Errorf("%w: %w", ErrInvalidPrice, err)
	}

	duration, err := domain.ParseDuration(rawDuration)
	if err != nil {
		return "", decimal.Zero, 0, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}

	return name, price, duration, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
