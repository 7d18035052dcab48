package classes

import "errors"

var (
	// ErrAccessDenied возвращается, когда создавать занятия пытается не персонал
	ErrAccessDenied = errors.New("access denied")

	// ErrTrainerNotFound возвращается, когда указанный тренер не найден
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
