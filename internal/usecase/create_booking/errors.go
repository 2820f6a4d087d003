package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrBookingConflict возвращается, когда интервал пересекается с
	// существующим активным бронированием хотя бы на одном объекте
	ErrBookingConflict = errors.New("create_booking: booking conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError содержит имена ВСЕХ объектов с конфликтующими бронированиями.
// Мультиобъектное создание откатывается целиком, если конфликтует хотя бы один.
type ConflictError struct {
	PropertyNames []string
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: dates are not available for: %s",
		ErrBookingConflict, strings.Join(e.PropertyNames, ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrBookingConflict)
func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
