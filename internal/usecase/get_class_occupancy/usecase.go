package get_class_occupancy

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	classRepo "github.com/fitclub/booking-service/internal/infra/storage/class"
)

// UseCase use case для вычисления заполненности занятия на дату
// Соответствие дня недели расписанию занятия здесь не проверяется,
// это ответственность вызывающей стороны
type UseCase struct {
	classRepo   ClassRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:   classRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case вычисления заполненности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetClassOccupancy: class=%d, date=%s",
		req.ClassID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetClassOccupancy: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование занятия
	class, err := uc.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			uc.logger.Warn("GetClassOccupancy: class id=%d not found", req.ClassID)
			return nil, ErrClassNotFound
		}
		uc.logger.Error("GetClassOccupancy: failed to get class id=%d: %v", req.ClassID, err)
		return nil, fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
	}

	// 3. Подсчитываем подтверждённые бронирования на этот день
	day := domain.DayStart(req.Date)

	booked, err := uc.bookingRepo.CountConfirmedForOccurrence(ctx, req.ClassID, day)
	if err != nil {
		uc.logger.Error("GetClassOccupancy: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	occupancy := domain.NewOccupancy(class.Capacity, booked)

	uc.logger.Info("GetClassOccupancy: class=%d, date=%s, booked=%d/%d",
		req.ClassID, day.Format(domain.DateFormat), occupancy.Booked, occupancy.Capacity)

	return &Response{
		ClassID:   req.ClassID,
		Date:      day,
		Occupancy: occupancy,
	}, nil
}
