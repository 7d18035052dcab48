package get_trainer_slots

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда тренер не найден
	// или не проводит персональные тренировки
	ErrTrainerNotFound = errors.New("get_trainer_slots: trainer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_trainer_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_trainer_slots: internal error")
)
