package cancel_membership

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

type MembershipsService interface {
	Cancel(ctx context.Context, userID int64) (*models.MembershipResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
