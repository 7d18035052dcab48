package change_package

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

type MembershipsService interface {
	ChangePackage(ctx context.Context, req *models.ChangePackageRequest) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
