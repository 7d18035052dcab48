package get_trainer_slots

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	getTrainerSlots "github.com/fitclub/booking-service/internal/usecase/get_trainer_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Label     string `json:"label"`     // "10:00 - 11:00"
	Available bool   `json:"available"`
}

// AvailabilityResponse HTTP модель сетки слотов
type AvailabilityResponse struct {
	TrainerID int64          `json:"trainerId"`
	Date      string         `json:"date"` // "2025-10-15"
	Slots     []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(trainerID int64, dateStr string) (*getTrainerSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTrainerSlots.Request{
		TrainerID: trainerID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTrainerSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	return &AvailabilityResponse{
		TrainerID: resp.TrainerID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
