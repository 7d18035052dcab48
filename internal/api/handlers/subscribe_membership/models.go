package subscribe_membership

import (
	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

// SubscribeRequest HTTP модель запроса на оформление абонемента
type SubscribeRequest struct {
	PackageID int64 `json:"packageId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SubscribeRequest) ToServiceRequest(userID int64) *models.SubscribeRequest {
	return &models.SubscribeRequest{
		UserID:    userID,
		PackageID: r.PackageID,
	}
}
