package domain

import (
	"time"

	"github.com/fitclub/booking-service/pkg/types"
)

// ScheduleSlot одно еженедельное время проведения занятия
// Времена настенные ("HH:MM"), без таймзоны
type ScheduleSlot struct {
	DayOfWeek int // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
}

// GroupClass a named recurring class template. Individual occurrences are
// identified by (classID, calendar date) and are never persisted on their own —
// occupancy is always computed from bookings.
type GroupClass struct {
	ID          int64
	Name        string
	Description *string
	Capacity    int // Максимум одновременных бронирований на одно занятие
	TrainerID   int64
	Schedule    []ScheduleSlot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleFor возвращает слот расписания для дня недели указанной даты
// или nil, если занятие в этот день не проводится
func (c *GroupClass) ScheduleFor(date time.Time) *ScheduleSlot {
	weekday := int(date.UTC().Weekday())
	for i := range c.Schedule {
		if c.Schedule[i].DayOfWeek == weekday {
			return &c.Schedule[i]
		}
	}
	return nil
}

// Occupancy заполненность конкретного занятия (occurrence)
type Occupancy struct {
	Capacity  int
	Booked    int
	Available int
	IsFull    bool
}

// NewOccupancy вычисляет заполненность из вместимости и числа confirmed-бронирований
// Capacity = 0 у legacy-строк означает "мест нет" — доступность никогда не выдумывается
func NewOccupancy(capacity, booked int) Occupancy {
	available := capacity - booked
	if available < 0 {
		available = 0
	}
	return Occupancy{
		Capacity:  capacity,
		Booked:    booked,
		Available: available,
		IsFull:    available <= 0,
	}
}
