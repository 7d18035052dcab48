package get_class_occupancy

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	getClassOccupancy "github.com/fitclub/booking-service/internal/usecase/get_class_occupancy"
)

// OccupancyResponse HTTP модель заполненности занятия
type OccupancyResponse struct {
	ClassID   int64  `json:"classId"`
	Date      string `json:"date"` // "2025-10-15"
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	IsFull    bool   `json:"isFull"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(classID int64, dateStr string) (*getClassOccupancy.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getClassOccupancy.Request{
		ClassID: classID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getClassOccupancy.Response) *OccupancyResponse {
	return &OccupancyResponse{
		ClassID:   resp.ClassID,
		Date:      resp.Date.Format(domain.DateFormat),
		Capacity:  resp.Occupancy.Capacity,
		Booked:    resp.Occupancy.Booked,
		Available: resp.Occupancy.Available,
		IsFull:    resp.Occupancy.IsFull,
	}
}
