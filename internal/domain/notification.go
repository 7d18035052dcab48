package domain

import "time"

// NotificationType represents the kind of scheduled notification
type NotificationType string

const (
	NotificationTypeBookingReminder NotificationType = "booking_reminder"
)

// NotificationStatus represents the delivery state of a notification
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusCancelled NotificationStatus = "cancelled"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// Notification запись-напоминание, создаётся при подтверждении бронирования
// Доставкой занимается внешний диспетчер, здесь только producer-сторона
type Notification struct {
	ID           int64
	UserID       int64
	BookingID    int64
	Type         NotificationType
	Status       NotificationStatus
	ScheduledFor time.Time

	CreatedAt time.Time
}
