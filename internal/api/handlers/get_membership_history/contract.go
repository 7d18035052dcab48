package get_membership_history

import (
	"context"

	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

type MembershipsService interface {
	History(ctx context.Context, userID int64) (*models.MembershipListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
