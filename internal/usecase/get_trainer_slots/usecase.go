package get_trainer_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/pkg/ptr"
	"github.com/fitclub/booking-service/pkg/types"
)

// UseCase use case для получения сетки слотов тренера на дату
type UseCase struct {
	userRepo    UserRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов тренера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTrainerSlots: trainer=%d, date=%s",
		req.TrainerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetTrainerSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что тренер существует и имеет роль trainer
	trainer, err := uc.userRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetTrainerSlots: trainer id=%d not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("GetTrainerSlots: failed to get trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if trainer.Role != domain.RoleTrainer {
		uc.logger.Warn("GetTrainerSlots: user id=%d is not a trainer", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	// 3. Проверяем, что тренер проводит персональные тренировки
	profile, err := uc.userRepo.GetTrainerProfile(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrProfileNotFound) {
			uc.logger.Warn("GetTrainerSlots: trainer id=%d has no profile", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("GetTrainerSlots: failed to get trainer profile id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer profile: %v", ErrInternal, err)
	}

	if !profile.OffersPersonalTraining() {
		uc.logger.Warn("GetTrainerSlots: trainer id=%d does not offer personal training", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	// 4. Вычисляем границы рабочего окна на указанную дату
	day := domain.DayStart(req.Date)

	windowStart, err := types.TimeString(domain.WorkDayStart).OnDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute window start: %v", ErrInternal, err)
	}
	windowEnd, err := types.TimeString(domain.WorkDayEnd).OnDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute window end: %v", ErrInternal, err)
	}

	// 5. Получаем подтверждённые тренировки, пересекающие рабочее окно
	filter := domain.BookingFilter{
		TrainerID:    ptr.Ptr(req.TrainerID),
		Type:         ptr.Ptr(domain.BookingTypePersonalTraining),
		Status:       ptr.Ptr(domain.BookingStatusConfirmed),
		OverlapStart: &windowStart,
		OverlapEnd:   &windowEnd,
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetTrainerSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем сетку слотов и помечаем занятые
	slots, err := buildSlotGrid(day, bookings)
	if err != nil {
		uc.logger.Error("GetTrainerSlots: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	uc.logger.Info("GetTrainerSlots: generated %d slots for trainer=%d, date=%s",
		len(slots), req.TrainerID, day.Format(domain.DateFormat))

	return &Response{
		TrainerID: req.TrainerID,
		Date:      day,
		Slots:     slots,
	}, nil
}
