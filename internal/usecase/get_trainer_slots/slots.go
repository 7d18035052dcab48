package get_trainer_slots

import (
	"fmt"
	"time"

	"github.com/fitclub/booking-service/internal/domain"
	"github.com/fitclub/booking-service/pkg/types"
)

// buildSlotGrid генерирует часовые слоты рабочего окна на указанную дату
// и помечает занятые пересечением с подтверждёнными тренировками
//
// Пересечение полуоткрытых интервалов: слот занят, только если
// начало бронирования СТРОГО раньше конца слота И конец СТРОГО позже начала.
// Граничащие интервалы (10:00-11:00 и 11:00-12:00) не пересекаются
func buildSlotGrid(date time.Time, bookings []*domain.Booking) ([]domain.TrainerSlot, error) {
	windowStart := types.TimeString(domain.WorkDayStart)
	windowEnd := types.TimeString(domain.WorkDayEnd)

	slots := make([]domain.TrainerSlot, 0)
	current := windowStart

	for current.IsBefore(windowEnd) {
		slotEnd, err := current.AddMinutes(domain.TrainerSlotMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(windowEnd) {
			break
		}

		slotStart, err := current.OnDate(date)
		if err != nil {
			return nil, err
		}
		slotEndInstant, err := slotEnd.OnDate(date)
		if err != nil {
			return nil, err
		}

		slots = append(slots, domain.TrainerSlot{
			StartTime: current,
			EndTime:   slotEnd,
			Label:     fmt.Sprintf("%s - %s", current, slotEnd),
			Available: !slotTaken(slotStart, slotEndInstant, bookings),
		})

		current = slotEnd
	}

	return slots, nil
}

// slotTaken проверяет, пересекается ли слот с каким-либо активным бронированием
func slotTaken(slotStart, slotEnd time.Time, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.IsActive() || b.Training == nil {
			continue
		}
		if domain.Overlaps(b.Training.StartTime, b.Training.EndTime, slotStart, slotEnd) {
			return true
		}
	}
	return false
}
