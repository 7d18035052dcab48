package create_training_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	bookingRepo "github.com/fitclub/booking-service/internal/infra/storage/booking"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/pkg/ptr"
)

// UseCase use case для бронирования персональной тренировки
type UseCase struct {
	userRepo         UserRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:         userRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case бронирования тренировки
// Проверки пересечений и вставка идут в сериализуемой транзакции;
// exclusion-ограничения в БД закрывают остаточную гонку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTrainingBooking: user=%d, trainer=%d, start=%s, end=%s",
		req.UserID, req.TrainerID,
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTrainingBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем интервал
	now := uc.timeProvider.Now()

	if err := validateTimeRange(req.StartTime, req.EndTime, now); err != nil {
		uc.logger.Warn("CreateTrainingBooking: time range validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем, что пользователь существует и является участником
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateTrainingBooking: user id=%d not found", req.UserID)
			return nil, ErrForbidden
		}
		uc.logger.Error("CreateTrainingBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsMember() {
		uc.logger.Warn("CreateTrainingBooking: user id=%d is not a member", req.UserID)
		return nil, ErrForbidden
	}

	// 4. Проверяем, что тренер существует и проводит персональные тренировки
	trainer, err := uc.userRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateTrainingBooking: trainer id=%d not found", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("CreateTrainingBooking: failed to get trainer id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	if trainer.Role != domain.RoleTrainer {
		uc.logger.Warn("CreateTrainingBooking: user id=%d is not a trainer", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	profile, err := uc.userRepo.GetTrainerProfile(ctx, req.TrainerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateTrainingBooking: trainer id=%d has no profile", req.TrainerID)
			return nil, ErrTrainerNotFound
		}
		uc.logger.Error("CreateTrainingBooking: failed to get trainer profile id=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get trainer profile: %v", ErrInternal, err)
	}

	if !profile.OffersPersonalTraining() {
		uc.logger.Warn("CreateTrainingBooking: trainer id=%d does not offer personal training", req.TrainerID)
		return nil, ErrTrainerNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем, что у участника нет пересекающейся тренировки
		memberBookings, err := uc.bookingRepo.List(txCtx, domain.BookingFilter{
			UserID:       ptr.Ptr(req.UserID),
			Type:         ptr.Ptr(domain.BookingTypePersonalTraining),
			Status:       ptr.Ptr(domain.BookingStatusConfirmed),
			OverlapStart: &req.StartTime,
			OverlapEnd:   &req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateTrainingBooking: failed to check member overlap: %v", err)
			return fmt.Errorf("%w: failed to check member overlap: %v", ErrInternal, err)
		}
		if len(memberBookings) > 0 {
			uc.logger.Warn("CreateTrainingBooking: user=%d has an overlapping booking", req.UserID)
			return ErrUserDoubleBooked
		}

		// 5.2. Проверяем, что у тренера нет пересекающейся тренировки
		trainerBookings, err := uc.bookingRepo.List(txCtx, domain.BookingFilter{
			TrainerID:    ptr.Ptr(req.TrainerID),
			Type:         ptr.Ptr(domain.BookingTypePersonalTraining),
			Status:       ptr.Ptr(domain.BookingStatusConfirmed),
			OverlapStart: &req.StartTime,
			OverlapEnd:   &req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateTrainingBooking: failed to check trainer overlap: %v", err)
			return fmt.Errorf("%w: failed to check trainer overlap: %v", ErrInternal, err)
		}
		if len(trainerBookings) > 0 {
			uc.logger.Warn("CreateTrainingBooking: trainer=%d is busy in this interval", req.TrainerID)
			return ErrTrainerUnavailable
		}

		// 5.3. Создаем бронирование
		booking := domain.NewTrainingBooking(req.UserID, req.TrainerID, req.StartTime, req.EndTime, req.Notes)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrMemberSlotTaken):
				return ErrUserDoubleBooked
			case errors.Is(err, bookingRepo.ErrTrainerSlotTaken):
				return ErrTrainerUnavailable
			}
			uc.logger.Error("CreateTrainingBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTrainingBooking: successfully created booking id=%d", result.ID)

	// 6. Планируем напоминание. Ошибка планирования не отменяет бронирование
	uc.scheduleReminder(ctx, result)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		TrainerID: result.Training.TrainerID,
		StartTime: result.Training.StartTime,
		EndTime:   result.Training.EndTime,
		Status:    string(result.Status),
		Notes:     result.Training.Notes,
		CreatedAt: result.CreatedAt,
	}, nil
}

// scheduleReminder создает pending-уведомление за сутки до начала тренировки
// Если до начала меньше суток, напоминание планируется на текущий момент
func (uc *UseCase) scheduleReminder(ctx context.Context, booking *domain.Booking) {
	scheduledFor := booking.Training.StartTime.Add(-domain.ReminderLeadTime)
	if now := uc.timeProvider.Now(); scheduledFor.Before(now) {
		scheduledFor = now
	}

	notification := &domain.Notification{
		UserID:       booking.UserID,
		BookingID:    booking.ID,
		Type:         domain.NotificationTypeBookingReminder,
		Status:       domain.NotificationStatusPending,
		ScheduledFor: scheduledFor,
	}

	if _, err := uc.notificationRepo.Create(ctx, notification); err != nil {
		uc.logger.Error("CreateTrainingBooking: failed to schedule reminder for booking id=%d: %v",
			booking.ID, err)
		return
	}

	uc.logger.Info("CreateTrainingBooking: reminder scheduled for booking id=%d at %s",
		booking.ID, notification.ScheduledFor.Format("2006-01-02 15:04"))
}
