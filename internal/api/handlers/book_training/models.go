package book_training

import (
	"time"

	createTrainingBooking "github.com/fitclub/booking-service/internal/usecase/create_training_booking"
)

// BookTrainingRequest HTTP модель запроса на запись к тренеру
type BookTrainingRequest struct {
	StartTime time.Time `json:"startTime"` // RFC3339
	EndTime   time.Time `json:"endTime"`   // RFC3339
	Notes     string    `json:"notes,omitempty"`
}

// BookTrainingResponse HTTP модель созданной записи
type BookTrainingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TrainerID int64     `json:"trainerId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *BookTrainingRequest) ToUseCaseRequest(userID, trainerID int64) *createTrainingBooking.Request {
	var notes *string
	if r.Notes != "" {
		notes = &r.Notes
	}
	return &createTrainingBooking.Request{
		UserID:    userID,
		TrainerID: trainerID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTrainingBooking.Response) *BookTrainingResponse {
	var notes string
	if resp.Notes != nil {
		notes = *resp.Notes
	}
	return &BookTrainingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		TrainerID: resp.TrainerID,
		StartTime: resp.StartTime,
		EndTime:   resp.EndTime,
		Status:    resp.Status,
		Notes:     notes,
		CreatedAt: resp.CreatedAt,
	}
}
