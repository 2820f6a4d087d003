package create_blocked_date

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_blocked_date: invalid input data")

	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_blocked_date: property not found")

	// ErrDateConflict возвращается, когда диапазон пересекается с активным
	// бронированием или другой блокировкой хотя бы на одном объекте
	ErrDateConflict = errors.New("create_blocked_date: date conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_blocked_date: internal error")
)

// ConflictError содержит имена ВСЕХ объектов, где диапазон недоступен.
// Мультиобъектная блокировка откатывается целиком при любом конфликте.
type ConflictError struct {
	PropertyNames []string
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: range is not free for: %s",
		ErrDateConflict, strings.Join(e.PropertyNames, ", "))
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrDateConflict)
func (e *ConflictError) Unwrap() error {
	return ErrDateConflict
}
