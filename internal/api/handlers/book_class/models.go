package book_class

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	createClassBooking "github.com/fitclub/booking-service/internal/usecase/create_class_booking"
)

// BookClassRequest HTTP модель запроса на запись на групповое занятие
type BookClassRequest struct {
	ClassDate string `json:"classDate"` // "2025-10-15"
}

// BookClassResponse HTTP модель созданной записи
type BookClassResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	ClassID   int64     `json:"classId"`
	ClassDate string    `json:"classDate"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *BookClassRequest) ToUseCaseRequest(userID, classID int64) (*createClassBooking.Request, error) {
	classDate, err := time.Parse(domain.DateFormat, r.ClassDate)
	if err != nil {
		return nil, err
	}

	return &createClassBooking.Request{
		UserID:    userID,
		ClassID:   classID,
		ClassDate: classDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createClassBooking.Response) *BookClassResponse {
	return &BookClassResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		ClassID:   resp.ClassID,
		ClassDate: resp.ClassDate.Format(domain.DateFormat),
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt,
	}
}
