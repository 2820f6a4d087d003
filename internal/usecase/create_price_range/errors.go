package create_price_range

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_price_range: invalid input data")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_price_range: property not found")

	// ErrRangeOverlap возвращается, когда диапазон пересекается с другим
	// ценовым диапазоном хотя бы на одном объекте
	ErrRangeOverlap = errors.New("create_price_range: price range overlap")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_price_range: internal error")
)

// OverlapError содержит имена всех объектов с пересекающимися диапазонами
type OverlapError struct {
	PropertyNames []string
}

// Error реализует интерфейс error
func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: overlapping ranges on: %s",
		ErrRangeOverlap, strings.Join(e.PropertyNames, ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrRangeOverlap)
func (e *OverlapError) Unwrap() error {
	return ErrRangeOverlap
}
