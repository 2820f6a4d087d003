package pricerange

import "errors"

var (
	// ErrPriceRangeNotFound возвращается, когда ценовой диапазон не найден
	ErrPriceRangeNotFound = errors.New("pricerange.repository: price range not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricerange.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricerange.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricerange.repository: failed to scan row")
)
