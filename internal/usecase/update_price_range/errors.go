package update_price_range

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_price_range: invalid input data")

	// ErrPriceRangeNotFound возвращается, когда диапазон не найден
	ErrPriceRangeNotFound = errors.New("update_price_range: price range not found")

	// ErrRangeOverlap возвращается, когда новый диапазон пересекается с
	// другим ценовым диапазоном того же объекта
	ErrRangeOverlap = errors.New("update_price_range: price range overlap")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_price_range: internal error")
)

// OverlapError содержит имя объекта с пересекающимся диапазоном
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
