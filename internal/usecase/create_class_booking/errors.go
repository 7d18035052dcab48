package create_class_booking

import "errors"

var (
	// ErrForbidden возвращается, когда пользователь не является участником клуба
	ErrForbidden = errors.New("create_class_booking: user is not a member")

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("create_class_booking: group class not found")

	// ErrClassNotScheduled возвращается, когда занятие не проводится
	// в указанный день недели
	ErrClassNotScheduled = errors.New("create_class_booking: class is not scheduled on this day")

	// ErrInvalidDate возвращается при дате занятия в прошлом
	ErrInvalidDate = errors.New("create_class_booking: class date is in the past")

	// ErrDuplicateBooking возвращается, когда у пользователя уже есть
	// подтверждённое бронирование этого занятия на этот день
	ErrDuplicateBooking = errors.New("create_class_booking: duplicate booking for this class occurrence")

	// ErrClassFull возвращается, когда свободных мест не осталось
	ErrClassFull = errors.New("create_class_booking: class is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_class_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_class_booking: internal error")
)
