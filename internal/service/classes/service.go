package classes

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/internal/service/classes/models"
)

// Service сервис справочника групповых занятий
type Service struct {
	classRepo ClassRepository
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(
	classRepo ClassRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		classRepo: classRepo,
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает групповое занятие с еженедельным расписанием
// Доступно только персоналу (admin/trainer)
// Вместимость обязательна и положительна: занятие без мест не имеет смысла
func (s *Service) Create(ctx context.Context, req *models.CreateClassRequest) (*models.ClassResponse, error) {
	s.logger.Info("Create: class %q by user=%d, trainer=%d, capacity=%d",
		req.Name, req.UserID, req.TrainerID, req.Capacity)

	// 1. Проверяем права инициатора
	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Create: user id=%d not found", req.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("Create: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - failed to get user: %v", ErrInternal, err)
	}

	if !requester.IsStaff() {
		s.logger.Warn("Create: user id=%d is not staff", req.UserID)
		return nil, ErrAccessDenied
	}

	// 2. Валидация входных данных
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что указанный тренер существует и имеет роль trainer
	trainer, err := s.userRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Create: trainer id=%d not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		s.logger.Error("Create: failed to get trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: Create - failed to get trainer: %v", ErrInternal, err)
	}

	if trainer.Role != domain.RoleTrainer {
		s.logger.Warn("Create: user id=%d is not a trainer", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	// 4. Создаем шаблон занятия и слоты расписания в одной транзакции
	var created *domain.GroupClass

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err = s.classRepo.Create(txCtx, req.ToDomain())
		if err != nil {
			s.logger.Error("Create: failed to create class %q: %v", req.Name, err)
			return fmt.Errorf("%w: Create - failed to create class: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created class id=%d", created.ID)
	return models.FromDomainClass(created), nil
}

// List получает все занятия с расписаниями
func (s *Service) List(ctx context.Context) (*models.ClassListResponse, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list classes: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d classes", len(classes))
	return models.FromDomainClassList(classes), nil
}

// validateCreateRequest валидирует данные нового занятия
func validateCreateRequest(req *models.CreateClassRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Capacity < domain.MinClassCapacity || req.Capacity > domain.MaxClassCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinClassCapacity, domain.MaxClassCapacity)
	}

	if req.TrainerID <= 0 {
		return fmt.Errorf("%w: trainerID must be positive", ErrInvalidInput)
	}

	if len(req.Schedule) == 0 {
		return fmt.Errorf("%w: schedule must contain at least one slot", ErrInvalidInput)
	}

	for i, slot := range req.Schedule {
		if slot.DayOfWeek < domain.MinDayOfWeek || slot.DayOfWeek > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: schedule[%d]: dayOfWeek must be in [%d..%d]",
				ErrInvalidInput, i, domain.MinDayOfWeek, domain.MaxDayOfWeek)
		}
		if err := slot.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: schedule[%d]: invalid startTime: %v", ErrInvalidInput, i, err)
		}
		if err := slot.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: schedule[%d]: invalid endTime: %v", ErrInvalidInput, i, err)
		}
		if !slot.StartTime.IsBefore(slot.EndTime) {
			return fmt.Errorf("%w: schedule[%d]: startTime must be before endTime", ErrInvalidInput, i)
		}
	}

	return nil
}
