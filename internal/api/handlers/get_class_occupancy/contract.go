package get_class_occupancy

import (
	"context"

	getClassOccupancy "github.com/fitclub/booking-service/internal/usecase/get_class_occupancy"
)

type GetClassOccupancyUseCase interface {
	Execute(ctx context.Context, req *getClassOccupancy.Request) (*getClassOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
