package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fitclub/booking-service/internal/domain"
	bookingRepo "github.com/fitclub/booking-service/internal/infra/storage/booking"
	"github.com/fitclub/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo      BookingRepository
	userRepo         UserRepository
	notificationRepo NotificationRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	notificationRepo NotificationRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:      bookingRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование, персонал - любое
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по эффективному статусу (confirmed/cancelled/completed)
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var wantStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		wantStatus = &status
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{UserID: &req.UserID})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	// Статус completed у прошедших confirmed-бронирований вычисляется на чтении,
	// поэтому фильтруем по эффективному статусу в памяти
	if wantStatus != nil {
		filtered := make([]*domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.EffectiveStatus(now) == *wantStatus {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, now), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, персонал - любое.
// Отменить можно только confirmed-бронирование, которое ещё не началось
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	now := s.timeProvider.Now()

	// Повторная отмена и отмена завершённого бронирования отклоняются
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Начавшееся или прошедшее бронирование уже не отменить
	if !booking.EffectiveStart().After(now) {
		s.logger.Warn("Cancel: booking id=%d has already started", bookingID)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, now); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Напоминания об отменённом бронировании больше не нужны
	// Ошибка здесь не отменяет уже выполненную отмену
	if err := s.notificationRepo.CancelByBookingID(ctx, bookingID); err != nil {
		s.logger.Error("Cancel: failed to cancel reminders for booking id=%d: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у владельца бронирования и у персонала (admin/trainer)
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("checkUserAccess: failed to get user id=%d: %v", userID, err)
		return ErrAccessDenied
	}

	if user.IsStaff() {
		return nil
	}

	return ErrAccessDenied
}
