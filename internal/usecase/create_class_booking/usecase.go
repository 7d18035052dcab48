package create_class_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	bookingRepo "github.com/fitclub/booking-service/internal/infra/storage/booking"
	classRepo "github.com/fitclub/booking-service/internal/infra/storage/class"
	userRepo "github.com/fitclub/booking-service/internal/infra/storage/user"
	"github.com/fitclub/booking-service/pkg/ptr"
)

// UseCase use case для бронирования места на групповом занятии
type UseCase struct {
	userRepo         UserRepository
	classRepo        ClassRepository
	bookingRepo      BookingRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	classRepo ClassRepository,
	bookingRepo BookingRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:         userRepo,
		classRepo:        classRepo,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case бронирования занятия
// Проверка дубликата и вместимости плюс вставка идут в сериализуемой
// транзакции; уникальный индекс в БД закрывает остаточную гонку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateClassBooking: user=%d, class=%d, date=%s",
		req.UserID, req.ClassID, req.ClassDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateClassBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Нормализуем день занятия и проверяем, что он не в прошлом
	day := domain.DayStart(req.ClassDate)
	if err := validateDate(day, now); err != nil {
		uc.logger.Warn("CreateClassBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем, что пользователь существует и является участником
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateClassBooking: user id=%d not found", req.UserID)
			return nil, ErrForbidden
		}
		uc.logger.Error("CreateClassBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.IsMember() {
		uc.logger.Warn("CreateClassBooking: user id=%d is not a member", req.UserID)
		return nil, ErrForbidden
	}

	// Переменные для результата и напоминания
	var result *domain.Booking
	var class *domain.GroupClass
	var schedule *domain.ScheduleSlot

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем занятие
		class, err = uc.classRepo.GetByID(txCtx, req.ClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				uc.logger.Warn("CreateClassBooking: class id=%d not found", req.ClassID)
				return ErrClassNotFound
			}
			uc.logger.Error("CreateClassBooking: failed to get class id=%d: %v", req.ClassID, err)
			return fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
		}

		// 5.2. Проверяем, что занятие проводится в этот день недели
		schedule = class.ScheduleFor(day)
		if schedule == nil {
			uc.logger.Warn("CreateClassBooking: class id=%d is not scheduled on %s",
				req.ClassID, day.Format(domain.DateFormat))
			return ErrClassNotScheduled
		}

		// 5.3. Проверяем, что у пользователя ещё нет бронирования этого занятия
		existing, err := uc.bookingRepo.List(txCtx, domain.BookingFilter{
			UserID:       ptr.Ptr(req.UserID),
			GroupClassID: ptr.Ptr(req.ClassID),
			Type:         ptr.Ptr(domain.BookingTypeGroupClass),
			Status:       ptr.Ptr(domain.BookingStatusConfirmed),
			ClassDate:    &day,
		})
		if err != nil {
			uc.logger.Error("CreateClassBooking: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
		}
		if len(existing) > 0 {
			uc.logger.Warn("CreateClassBooking: user=%d already booked class=%d on %s",
				req.UserID, req.ClassID, day.Format(domain.DateFormat))
			return ErrDuplicateBooking
		}

		// 5.4. Проверяем вместимость занятия
		booked, err := uc.bookingRepo.CountConfirmedForOccurrence(txCtx, req.ClassID, day)
		if err != nil {
			uc.logger.Error("CreateClassBooking: failed to count bookings: %v", err)
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		occupancy := domain.NewOccupancy(class.Capacity, booked)
		if occupancy.IsFull {
			uc.logger.Warn("CreateClassBooking: class=%d is full on %s, %d/%d seats taken",
				req.ClassID, day.Format(domain.DateFormat), occupancy.Booked, occupancy.Capacity)
			return ErrClassFull
		}

		uc.logger.Info("CreateClassBooking: class=%d has seats, %d/%d taken",
			req.ClassID, occupancy.Booked, occupancy.Capacity)

		// 5.5. Создаем бронирование
		booking := domain.NewGroupClassBooking(req.UserID, req.ClassID, day)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateClassBooking) {
				return ErrDuplicateBooking
			}
			uc.logger.Error("CreateClassBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateClassBooking: successfully created booking id=%d", result.ID)

	// 6. Планируем напоминание. Ошибка планирования не отменяет бронирование
	uc.scheduleReminder(ctx, result, schedule)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		ClassID:   result.GroupClass.GroupClassID,
		ClassDate: result.GroupClass.ClassDate,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}

// scheduleReminder создает pending-уведомление за сутки до начала занятия
// Если до начала меньше суток, напоминание планируется на текущий момент
func (uc *UseCase) scheduleReminder(ctx context.Context, booking *domain.Booking, schedule *domain.ScheduleSlot) {
	start, err := schedule.StartTime.OnDate(booking.GroupClass.ClassDate)
	if err != nil {
		uc.logger.Error("CreateClassBooking: failed to compute reminder time for booking id=%d: %v",
			booking.ID, err)
		return
	}

	scheduledFor := start.Add(-domain.ReminderLeadTime)
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
		uc.logger.Error("CreateClassBooking: failed to schedule reminder for booking id=%d: %v",
			booking.ID, err)
		return
	}

	uc.logger.Info("CreateClassBooking: reminder scheduled for booking id=%d at %s",
		booking.ID, notification.ScheduledFor.Format("2006-01-02 15:04"))
}
