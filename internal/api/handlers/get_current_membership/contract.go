package get_current_membership

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

type MembershipsService interface {
	Current(ctx context.Context, userID int64) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
