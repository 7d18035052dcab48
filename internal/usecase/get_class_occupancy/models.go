package get_class_occupancy

import (
	"time"

	"github.com/fitclub/booking-service/internal/domain"
)

// Request модель запроса заполненности занятия
type Request struct {
	ClassID int64     // ID занятия
	Date    time.Time // День конкретного проведения (occurrence)
}

// Response модель ответа с заполненностью занятия
type Response struct {
	ClassID   int64            // ID занятия
	Date      time.Time        // День, на который считалась заполненность
	Occupancy domain.Occupancy // Вместимость, занято, свободно, переполненность
}
