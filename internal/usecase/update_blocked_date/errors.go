package update_blocked_date

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_blocked_date: invalid input data")

	// ErrBlockedDateNotFound возвращается, когда блокировка не найдена
	ErrBlockedDateNotFound = errors.New("update_blocked_date: blocked date not found")

	// ErrDateConflict возвращается, когда новый диапазон пересекается с
	// активным бронированием или другой блокировкой
	ErrDateConflict = errors.New("update_blocked_date: date conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_blocked_date: internal error")
)

// ConflictError содержит имя объекта, где новый диапазон недоступен
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
