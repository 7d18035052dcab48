package domain

import "time"

// Personal training working window
// Окно работы тренеров фиксировано конфигурацией клуба, не настраивается per-trainer
const (
	WorkDayStart       = "08:00"
	WorkDayEnd         = "20:00"
	TrainerSlotMinutes = 60
)

// Business validation constants
const (
	MaxNotesLength = 500

	MinClassCapacity = 1
	MaxClassCapacity = 500

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday
)

// Membership defaults
const (
	// Длительность периода подписки: один календарный месяц
	MembershipPeriodMonths = 1
)

// ReminderLeadTime за сколько до начала занятия планируется напоминание
const ReminderLeadTime = 24 * time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveBookingStatuses статусы бронирований, занимающих место/слот
// Используется при подсчёте занятости
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusConfirmed,
}
