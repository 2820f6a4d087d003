package pricelists

import "errors"

var (
	// ErrPriceRangeNotFound возвращается, когда ценовой диапазон не найден
	ErrPriceRangeNotFound = errors.New("price range not found")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
