package create_class

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/classes/models"
)

type ClassesService interface {
	Create(ctx context.Context, req *models.CreateClassRequest) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
