package models

import (
	"errors"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
// Заполнены либо поля группового занятия, либо поля тренировки, по type
type BookingResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Type   string `json:"type"`
	Status string `json:"status"` // Эффективный статус: прошедшие confirmed отдаются как completed

	// Групповое занятие
	GroupClassID *int64  `json:"groupClassId,omitempty"`
	ClassDate    *string `json:"classDate,omitempty"` // "2025-10-15"

	// Персональная тренировка
	TrainerID *int64     `json:"trainerId,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Статус вычисляется относительно now: confirmed в прошлом → completed
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Type:      string(b.Type),
		Status:    string(b.EffectiveStatus(now)),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.GroupClass != nil {
		resp.GroupClassID = &b.GroupClass.GroupClassID
		classDate := b.GroupClass.ClassDate.Format(domain.DateFormat)
		resp.ClassDate = &classDate
	}

	if b.Training != nil {
		resp.TrainerID = &b.Training.TrainerID
		resp.StartTime = &b.Training.StartTime
		resp.EndTime = &b.Training.EndTime
		resp.Notes = b.Training.Notes
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, now); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.BookingStatusConfirmed,
		domain.BookingStatusCancelled,
		domain.BookingStatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
