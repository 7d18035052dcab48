package get_trainer_slots

import (
	"context"

	getTrainerSlots "github.com/fitclub/booking-service/internal/usecase/get_trainer_slots"
)

type GetTrainerSlotsUseCase interface {
	Execute(ctx context.Context, req *getTrainerSlots.Request) (*getTrainerSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
