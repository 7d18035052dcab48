package models

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/types"
)

// Request модели

// ScheduleSlotRequest одно еженедельное время проведения занятия
type ScheduleSlotRequest struct {
	DayOfWeek int              `json:"dayOfWeek"` // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString `json:"startTime"` // "18:00"
	EndTime   types.TimeString `json:"endTime"`   // "19:00"
}

// CreateClassRequest запрос на создание группового занятия
type CreateClassRequest struct {
	UserID      int64                 `json:"-"` // Инициатор, из контекста аутентификации
	Name        string                `json:"name"`
	Description *string               `json:"description,omitempty"`
	Capacity    int                   `json:"capacity"`
	TrainerID   int64                 `json:"trainerId"`
	Schedule    []ScheduleSlotRequest `json:"schedule"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateClassRequest) ToDomain() *domain.GroupClass {
	schedule := make([]domain.ScheduleSlot, 0, len(r.Schedule))
	for _, slot := range r.Schedule {
		schedule = append(schedule, domain.ScheduleSlot{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return &domain.GroupClass{
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		TrainerID:   r.TrainerID,
		Schedule:    schedule,
	}
}

// Response модели

// ScheduleSlotResponse одно еженедельное время проведения занятия
type ScheduleSlotResponse struct {
	DayOfWeek int              `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// ClassResponse ответ с данными занятия
type ClassResponse struct {
	ID          int64                  `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description,omitempty"`
	Capacity    int                    `json:"capacity"`
	TrainerID   int64                  `json:"trainerId"`
	Schedule    []ScheduleSlotResponse `json:"schedule"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// ClassListResponse ответ со списком занятий
type ClassListResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// Методы конвертации

// FromDomainClass конвертирует domain модель в DTO
func FromDomainClass(c *domain.GroupClass) *ClassResponse {
	if c == nil {
		return nil
	}

	schedule := make([]ScheduleSlotResponse, 0, len(c.Schedule))
	for _, slot := range c.Schedule {
		schedule = append(schedule, ScheduleSlotResponse{
			DayOfWeek: slot.DayOfWeek,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		})
	}

	return &ClassResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Capacity:    c.Capacity,
		TrainerID:   c.TrainerID,
		Schedule:    schedule,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainClassList конвертирует список domain моделей в DTO
func FromDomainClassList(classes []*domain.GroupClass) *ClassListResponse {
	resp := &ClassListResponse{
		Classes: make([]ClassResponse, 0, len(classes)),
	}

	for _, c := range classes {
		if cResp := FromDomainClass(c); cResp != nil {
			resp.Classes = append(resp.Classes, *cResp)
		}
	}

	return resp
}
