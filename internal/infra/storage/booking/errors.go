package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateClassBooking возвращается при нарушении уникальности
	// (user_id, group_class_id, class_date) для confirmed-бронирований
	ErrDuplicateClassBooking = errors.New("booking.repository: duplicate class booking")

	// ErrTrainerSlotTaken возвращается при нарушении exclusion-ограничения
	// на пересечение интервалов тренера
	ErrTrainerSlotTaken = errors.New("booking.repository: trainer time range already booked")

	// ErrMemberSlotTaken возвращается при нарушении exclusion-ограничения
	// на пересечение интервалов участника
	ErrMemberSlotTaken = errors.New("booking.repository: member time range already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
