package models

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// Request модели

// SubscribeRequest запрос на оформление абонемента
type SubscribeRequest struct {
	UserID    int64 `json:"userId"`
	PackageID int64 `json:"packageId"`
}

// ChangePackageRequest запрос на смену тарифного пакета со следующего периода
type ChangePackageRequest struct {
	UserID    int64 `json:"userId"`
	PackageID int64 `json:"packageId"`
}

// Response модели

// MembershipResponse ответ с данными абонемента
type MembershipResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	PackageID     int64   `json:"packageId"`
	StartDate     string  `json:"startDate"` // "2025-10-15"
	EndDate       string  `json:"endDate"`
	Status        string  `json:"status"` // Эффективный статус: истёкшие отдаются как expired
	AutoRenew     bool    `json:"autoRenew"`
	NextPackageID *int64  `json:"nextPackageId,omitempty"`
	CancelledAt   *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MembershipListResponse ответ со списком абонементов
type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
}

// PackageResponse ответ с данными тарифного пакета
type PackageResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PackageListResponse ответ с каталогом тарифных пакетов
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	MembershipID int64     `json:"membershipId"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Методы конвертации

// FromDomainMembership конвертирует domain модель в DTO
// Статус вычисляется относительно now: истёкший период отдаётся как expired
func FromDomainMembership(m *domain.Membership, now time.Time) *MembershipResponse {
	if m == nil {
		return nil
	}

	resp := &MembershipResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		PackageID:     m.PackageID,
		StartDate:     m.StartDate.Format(domain.DateFormat),
		EndDate:       m.EndDate.Format(domain.DateFormat),
		Status:        string(m.EffectiveStatus(now)),
		AutoRenew:     m.AutoRenew,
		NextPackageID: m.NextPackageID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.CancelledAt != nil {
		cancelledStr := m.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainMembershipList конвертирует список domain моделей в DTO
func FromDomainMembershipList(memberships []*domain.Membership, now time.Time) *MembershipListResponse {
	resp := &MembershipListResponse{
		Memberships: make([]MembershipResponse, 0, len(memberships)),
	}

	for _, m := range memberships {
		if mResp := FromDomainMembership(m, now); mResp != nil {
			resp.Memberships = append(resp.Memberships, *mResp)
		}
	}

	return resp
}

// FromDomainPackage конвертирует тарифный пакет в DTO
func FromDomainPackage(p *domain.MembershipPackage) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

// FromDomainPackageList конвертирует каталог пакетов в DTO
func FromDomainPackageList(packages []*domain.MembershipPackage) *PackageListResponse {
	resp := &PackageListResponse{
		Packages: make([]PackageResponse, 0, len(packages)),
	}

	for _, p := range packages {
		if pResp := FromDomainPackage(p); pResp != nil {
			resp.Packages = append(resp.Packages, *pResp)
		}
	}

	return resp
}

// FromDomainPayment конвертирует платёж в DTO
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		MembershipID: p.MembershipID,
		Amount:       p.Amount,
		Status:       string(p.Status),
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

// FromDomainPaymentList конвертирует список платежей в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		if pResp := FromDomainPayment(p); pResp != nil {
			resp.Payments = append(resp.Payments, *pResp)
		}
	}

	return resp
}
