package update_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingCancelled возвращается при попытке редактировать
	// отменённое бронирование
	ErrBookingCancelled = errors.New("update_booking: booking is cancelled")

	// ErrBookingConflict возвращается, когда новый интервал пересекается
	// с другим активным бронированием
	ErrBookingConflict = errors.New("update_booking: booking conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// ConflictError содержит имя объекта с конфликтующими бронированиями
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
