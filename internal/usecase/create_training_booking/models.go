package create_training_booking

import "time"

// Request модель запроса на бронирование персональной тренировки
type Request struct {
	UserID    int64     // ID участника
	TrainerID int64     // ID тренера
	StartTime time.Time // Начало тренировки (абсолютный момент)
	EndTime   time.Time // Конец тренировки (абсолютный момент)
	Notes     *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	UserID    int64     // ID участника
	TrainerID int64     // ID тренера
	StartTime time.Time // Начало тренировки
	EndTime   time.Time // Конец тренировки
	Status    string    // Статус бронирования
	Notes     *string   // Заметки
	CreatedAt time.Time // Время создания
}
