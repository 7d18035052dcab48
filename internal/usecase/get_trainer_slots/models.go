package get_trainer_slots

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// Request модель запроса на получение слотов тренера
type Request struct {
	TrainerID int64     // ID тренера
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	TrainerID int64                // ID тренера
	Date      time.Time            // Дата, на которую запрашивались слоты
	Slots     []domain.TrainerSlot // Часовые слоты рабочего окна
}
