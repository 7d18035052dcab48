package book_training

import (
	"context"

	createTrainingBooking "github.com/fitclub/booking-service/internal/usecase/create_training_booking"
)

type CreateTrainingBookingUseCase interface {
	Execute(ctx context.Context, req *createTrainingBooking.Request) (*createTrainingBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
