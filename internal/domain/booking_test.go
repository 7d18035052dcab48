package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time {
		return time.Date(2025, 10, 15, h, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		a1   time.Time
		a2   time.Time
		b1   time.Time
		b2   time.Time
		want bool
	}{
		{name: "identical", a1: at(10), a2: at(11), b1: at(10), b2: at(11), want: true},
		{name: "partial overlap", a1: at(10), a2: at(12), b1: at(11), b2: at(13), want: true},
		{name: "containment", a1: at(9), a2: at(14), b1: at(10), b2: at(11), want: true},
		{name: "adjacent do not overlap", a1: at(10), a2: at(11), b1: at(11), b2: at(12), want: false},
		{name: "adjacent reversed", a1: at(11), a2: at(12), b1: at(10), b2: at(11), want: false},
		{name: "disjoint", a1: at(8), a2: at(9), b1: at(15), b2: at(16), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a1, tt.a2, tt.b1, tt.b2))
		})
	}
}

func TestDayStart(t *testing.T) {
	moment := time.Date(2025, 10, 15, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), DayStart(moment))

	// Момент в другой таймзоне нормализуется к календарному дню UTC
	loc := time.FixedZone("UTC+5", 5*3600)
	late := time.Date(2025, 10, 16, 2, 0, 0, 0, loc) // 2025-10-15 21:00 UTC
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), DayStart(late))
}

func TestBooking_EffectiveStatus(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	past := NewTrainingBooking(1, 2, now.Add(-2*time.Hour), now.Add(-time.Hour), nil)
	assert.Equal(t, BookingStatusCompleted, past.EffectiveStatus(now))

	future := NewTrainingBooking(1, 2, now.Add(time.Hour), now.Add(2*time.Hour), nil)
	assert.Equal(t, BookingStatusConfirmed, future.EffectiveStatus(now))

	// Отменённое бронирование остаётся cancelled и после начала
	cancelled := NewTrainingBooking(1, 2, now.Add(-2*time.Hour), now.Add(-time.Hour), nil)
	cancelled.Status = BookingStatusCancelled
	assert.Equal(t, BookingStatusCancelled, cancelled.EffectiveStatus(now))
}

func TestBooking_EffectiveStatus_GroupClass(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	// Свежее бронирование занятия на сегодня остаётся confirmed весь день
	today := NewGroupClassBooking(1, 5, DayStart(now))
	assert.Equal(t, BookingStatusConfirmed, today.EffectiveStatus(now))

	// День занятия прошёл полностью
	yesterday := NewGroupClassBooking(1, 5, now.AddDate(0, 0, -1))
	assert.Equal(t, BookingStatusCompleted, yesterday.EffectiveStatus(now))

	// Ровно полночь следующего дня: день занятия уже позади
	midnight := DayStart(now).Add(24 * time.Hour)
	assert.Equal(t, BookingStatusCompleted, today.EffectiveStatus(midnight))
}

func TestBooking_EffectiveStart(t *testing.T) {
	classDate := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	classBooking := NewGroupClassBooking(1, 5, classDate)
	assert.Equal(t, classDate, classBooking.EffectiveStart())

	start := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)
	training := NewTrainingBooking(1, 2, start, start.Add(time.Hour), nil)
	assert.Equal(t, start, training.EffectiveStart())
}

func TestNewOccupancy(t *testing.T) {
	occ := NewOccupancy(20, 5)
	assert.Equal(t, 15, occ.Available)
	assert.False(t, occ.IsFull)

	full := NewOccupancy(20, 20)
	assert.Equal(t, 0, full.Available)
	assert.True(t, full.IsFull)

	// Переполнение не даёт отрицательной доступности
	over := NewOccupancy(20, 25)
	assert.Equal(t, 0, over.Available)
	assert.True(t, over.IsFull)

	// Нулевая вместимость означает "мест нет"
	zero := NewOccupancy(0, 0)
	assert.True(t, zero.IsFull)
}

func TestGroupClass_ScheduleFor(t *testing.T) {
	class := &GroupClass{
		Schedule: []ScheduleSlot{
			{DayOfWeek: 1, StartTime: "18:00", EndTime: "19:00"}, // Monday
			{DayOfWeek: 3, StartTime: "18:00", EndTime: "19:00"}, // Wednesday
		},
	}

	monday := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	slot := class.ScheduleFor(monday)
	assert.NotNil(t, slot)
	assert.Equal(t, 1, slot.DayOfWeek)

	tuesday := monday.AddDate(0, 0, 1)
	assert.Nil(t, class.ScheduleFor(tuesday))
}

func TestMembership_Lifecycle(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	active := &Membership{
		Status:  MembershipStatusActive,
		EndDate: now.AddDate(0, 0, 10),
	}
	assert.Equal(t, MembershipStatusActive, active.EffectiveStatus(now))
	assert.True(t, active.CanBeCancelled(now))
	assert.False(t, active.CanBeReactivated(now))

	cancelled := &Membership{
		Status:  MembershipStatusCancelled,
		EndDate: now.AddDate(0, 0, 10),
	}
	assert.Equal(t, MembershipStatusCancelled, cancelled.EffectiveStatus(now))
	assert.False(t, cancelled.CanBeCancelled(now))
	assert.True(t, cancelled.CanBeReactivated(now))

	// Истёкший период отдаётся как expired независимо от хранимого статуса
	expired := &Membership{
		Status:  MembershipStatusActive,
		EndDate: now.AddDate(0, -1, 0),
	}
	assert.Equal(t, MembershipStatusExpired, expired.EffectiveStatus(now))
	assert.False(t, expired.CanBeCancelled(now))
	assert.False(t, expired.CanBeReactivated(now))
}
