package book_class

import (
	"context"

	createClassBooking "github.com/fitclub/booking-service/internal/usecase/create_class_booking"
)

type CreateClassBookingUseCase interface {
	Execute(ctx context.Context, req *createClassBooking.Request) (*createClassBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
