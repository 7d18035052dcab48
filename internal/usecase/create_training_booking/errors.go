package create_training_booking

import "errors"

var (
	// ErrForbidden возвращается, когда пользователь не является участником клуба
	ErrForbidden = errors.New("create_training_booking: user is not a member")

	// ErrTrainerNotFound возвращается, когда тренер не найден
	// или не проводит персональные тренировки
	ErrTrainerNotFound = errors.New("create_training_booking: trainer not found")

	// ErrInvalidTimeRange возвращается, когда начало не раньше конца
	ErrInvalidTimeRange = errors.New("create_training_booking: startTime must be before endTime")

	// ErrStartTimeInPast возвращается, когда время начала уже прошло
	ErrStartTimeInPast = errors.New("create_training_booking: startTime is in the past")

	// ErrUserDoubleBooked возвращается, когда у участника уже есть
	// подтверждённая тренировка, пересекающаяся по времени
	ErrUserDoubleBooked = errors.New("create_training_booking: user already has an overlapping booking")

	// ErrTrainerUnavailable возвращается, когда у тренера уже есть
	// подтверждённая тренировка, пересекающаяся по времени
	ErrTrainerUnavailable = errors.New("create_training_booking: trainer is unavailable at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_training_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_training_booking: internal error")
)
