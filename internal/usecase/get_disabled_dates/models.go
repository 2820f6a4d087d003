package get_disabled_dates

import "github.com/emkoumo/bookingapp/pkg/types"

// Request модель запроса недоступных дат календаря.
// From/To задают необязательное окно; nil означает "без ограничения".
type Request struct {
	PropertyID int64
	From       *types.Date
	To         *types.Date
}

// Response модель ответа: отсортированный список дат без дубликатов
type Response struct {
	DisabledDates []types.Date
}
