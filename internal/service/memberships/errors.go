package memberships

import "errors"

var (
	// ErrForbidden возвращается, когда пользователь не является участником клуба
	ErrForbidden = errors.New("user is not a member")

	// ErrPackageNotFound возвращается, когда тарифный пакет не найден
	ErrPackageNotFound = errors.New("membership package not found")

	// ErrNoCurrentMembership возвращается, когда у пользователя нет
	// действующего абонемента
	ErrNoCurrentMembership = errors.New("no current membership")

	// ErrAlreadySubscribed возвращается при попытке оформить второй
	// действующий абонемент
	ErrAlreadySubscribed = errors.New("user already has a current membership")

	// ErrNotActive возвращается, когда действующий абонемент не в статусе active
	ErrNotActive = errors.New("current membership is not active")

	// ErrNotCancelled возвращается, когда действующий абонемент не в статусе cancelled
	ErrNotCancelled = errors.New("current membership is not cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
