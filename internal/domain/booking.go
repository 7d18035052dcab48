package domain

import "time"

// BookingType discriminates the two booking variants
type BookingType string

const (
	BookingTypeGroupClass       BookingType = "group_class"
	BookingTypePersonalTraining BookingType = "personal_training"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// GroupClassDetails поля бронирования занятия в группе
// Конкретное занятие (occurrence) идентифицируется парой (GroupClassID, ClassDate)
type GroupClassDetails struct {
	GroupClassID int64
	ClassDate    time.Time // День занятия, нормализован к полуночи UTC
}

// TrainingDetails поля бронирования персональной тренировки
type TrainingDetails struct {
	TrainerID int64
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
}

// Booking represents a member's booking of a group class occurrence or a
// personal training session. Exactly one of GroupClass/Training is populated,
// matching Type — use the constructors below, not struct literals.
type Booking struct {
	ID     int64
	UserID int64
	Type   BookingType
	Status BookingStatus

	GroupClass *GroupClassDetails
	Training   *TrainingDetails

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGroupClassBooking создает confirmed-бронирование занятия в группе
func NewGroupClassBooking(userID, classID int64, classDate time.Time) *Booking {
	return &Booking{
		UserID: userID,
		Type:   BookingTypeGroupClass,
		Status: BookingStatusConfirmed,
		GroupClass: &GroupClassDetails{
			GroupClassID: classID,
			ClassDate:    DayStart(classDate),
		},
	}
}

// NewTrainingBooking создает confirmed-бронирование персональной тренировки
func NewTrainingBooking(userID, trainerID int64, start, end time.Time, notes *string) *Booking {
	return &Booking{
		UserID: userID,
		Type:   BookingTypePersonalTraining,
		Status: BookingStatusConfirmed,
		Training: &TrainingDetails{
			TrainerID: trainerID,
			StartTime: start,
			EndTime:   end,
			Notes:     notes,
		},
	}
}

// IsActive returns true if the booking still occupies its slot or seat
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed
}

// CanBeCancelled returns true if the booking is in a cancellable state
// (the future-start check is the caller's responsibility since it needs "now")
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusConfirmed
}

// EffectiveStart возвращает момент, с которого бронирование считается начавшимся:
// день занятия для группы, время начала для персональной тренировки
func (b *Booking) EffectiveStart() time.Time {
	switch b.Type {
	case BookingTypeGroupClass:
		if b.GroupClass != nil {
			return b.GroupClass.ClassDate
		}
	case BookingTypePersonalTraining:
		if b.Training != nil {
			return b.Training.StartTime
		}
	}
	return time.Time{}
}

// EffectiveStatus возвращает статус с учётом прошедшего времени:
// прошедшее confirmed-бронирование отображается как completed,
// строка в БД при этом не мутирует
// Занятие в группе считается прошедшим после конца дня занятия
// (бронирование на сегодня разрешено и не должно сразу стать completed),
// тренировка — после времени начала
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if b.Status == BookingStatusConfirmed && b.effectivelyPassed(now) {
		return BookingStatusCompleted
	}
	return b.Status
}

func (b *Booking) effectivelyPassed(now time.Time) bool {
	switch b.Type {
	case BookingTypeGroupClass:
		if b.GroupClass != nil {
			return !b.GroupClass.ClassDate.Add(24 * time.Hour).After(now)
		}
	case BookingTypePersonalTraining:
		if b.Training != nil {
			return b.Training.StartTime.Before(now)
		}
	}
	return false
}

// Overlaps проверяет пересечение полуоткрытых интервалов [a1, a2) и [b1, b2)
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && a2.After(b1)
}

// DayStart нормализует момент времени к началу его календарного дня (UTC)
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// BookingFilter фильтр для выборки бронирований
// Все поля опциональны и комбинируются через AND
type BookingFilter struct {
	UserID       *int64
	TrainerID    *int64
	GroupClassID *int64
	Type         *BookingType
	Status       *BookingStatus
	ClassDate    *time.Time // День занятия (для group_class)
	OverlapStart *time.Time // Начало интервала пересечения (для personal_training)
	OverlapEnd   *time.Time // Конец интервала пересечения
}
