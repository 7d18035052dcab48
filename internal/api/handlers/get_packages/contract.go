package get_packages

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

type MembershipsService interface {
	Packages(ctx context.Context) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
