package domain

import "time"

// Role represents a user's role in the system
// Роли взаимоисключающие и неизменяемые после регистрации
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

// User represents an authenticated identity
type User struct {
	ID    int64
	Name  string
	Email string
	Role  Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMember returns true if the user can book classes and training sessions
func (u *User) IsMember() bool {
	return u.Role == RoleMember
}

// IsStaff returns true for roles that manage reference data and other users' bookings
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleTrainer
}

// TrainerType gates which availability listings a trainer appears in
type TrainerType string

const (
	TrainerTypePersonal TrainerType = "personal"
	TrainerTypeGroup    TrainerType = "group"
	TrainerTypeBoth     TrainerType = "both"
)

// TrainerProfile holds trainer-specific data, owned by a User with RoleTrainer
type TrainerProfile struct {
	ID          int64
	UserID      int64
	HourlyRate  float64
	TrainerType TrainerType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OffersPersonalTraining returns true if the trainer appears in
// personal-training availability listings
func (p *TrainerProfile) OffersPersonalTraining() bool {
	return p.TrainerType == TrainerTypePersonal || p.TrainerType == TrainerTypeBoth
}
