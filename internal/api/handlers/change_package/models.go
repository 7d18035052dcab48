package change_package

import (
	"github.com/fitclub/booking-service/internal/service/memberships/models"
)

// ChangePackageRequest HTTP модель запроса на смену тарифного пакета
type ChangePackageRequest struct {
	PackageID int64 `json:"packageId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ChangePackageRequest) ToServiceRequest(userID int64) *models.ChangePackageRequest {
	return &models.ChangePackageRequest{
		UserID:    userID,
		PackageID: r.PackageID,
	}
}
