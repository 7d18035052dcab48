package domain

import "time"

// MembershipStatus represents the stored status of a membership
// Строка со статусом active/cancelled и endDate в прошлом считается expired
// на чтении — отдельного перехода в expired нет
type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusCancelled MembershipStatus = "cancelled"
	MembershipStatusExpired   MembershipStatus = "expired"
)

// Membership a member's subscription period. At most one membership per user
// is "current" (status active/cancelled with endDate >= now) at any time;
// the rest is history. Current is always found by query, never by a pointer
// on the user record.
type Membership struct {
	ID            int64
	UserID        int64
	PackageID     int64
	StartDate     time.Time
	EndDate       time.Time
	Status        MembershipStatus
	AutoRenew     bool
	NextPackageID *int64 // Пакет, вступающий в силу после EndDate (если задан)
	CancelledAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true once the period is over, regardless of stored status
func (m *Membership) IsExpired(now time.Time) bool {
	return m.EndDate.Before(now)
}

// EffectiveStatus возвращает статус с учётом истечения периода
func (m *Membership) EffectiveStatus(now time.Time) MembershipStatus {
	if m.IsExpired(now) {
		return MembershipStatusExpired
	}
	return m.Status
}

// CanBeCancelled returns true if the membership is active and unexpired
func (m *Membership) CanBeCancelled(now time.Time) bool {
	return m.Status == MembershipStatusActive && !m.IsExpired(now)
}

// CanBeReactivated returns true if the membership is cancelled and unexpired
func (m *Membership) CanBeReactivated(now time.Time) bool {
	return m.Status == MembershipStatusCancelled && !m.IsExpired(now)
}

// MembershipPackage static catalog entry, immutable reference data
type MembershipPackage struct {
	ID    int64
	Name  string
	Price float64

	CreatedAt time.Time
}

// PaymentStatus represents the status of a payment record
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment append-only ledger entry, created exactly once per subscribe action
// Реальной платёжной интеграции нет: оплата фиксируется сразу как completed
type Payment struct {
	ID           int64
	UserID       int64
	MembershipID int64
	Amount       float64
	Status       PaymentStatus
	Description  string

	CreatedAt time.Time
}
