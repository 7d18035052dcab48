package get_class_occupancy

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("get_class_occupancy: group class not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_class_occupancy: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_class_occupancy: internal error")
)
