package class

import "errors"

var (
	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("class.repository: group class not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("class.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("class.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("class.repository: failed to scan row")
)
