package domain

import "github.com/fitclub/booking-service/pkg/types"

// TrainerSlot один часовой слот в рабочем окне тренера на конкретную дату
type TrainerSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Label     string // Человекочитаемый диапазон, например "10:00 - 11:00"
	Available bool
}
