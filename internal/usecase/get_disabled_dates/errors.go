package get_disabled_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_disabled_dates: invalid input data")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("get_disabled_dates: property not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_disabled_dates: internal error")
)
