package create_class_booking

import "time"

// Request модель запроса на бронирование группового занятия
type Request struct {
	UserID    int64     // ID участника
	ClassID   int64     // ID занятия
	ClassDate time.Time // День конкретного проведения (occurrence)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	UserID    int64     // ID участника
	ClassID   int64     // ID занятия
	ClassDate time.Time // День занятия, нормализованный к полуночи UTC
	Status    string    // Статус бронирования
	CreatedAt time.Time // Время создания
}
