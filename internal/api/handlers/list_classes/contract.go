package list_classes

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/classes/models"
)

type ClassesService interface {
	List(ctx context.Context) (*models.ClassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
