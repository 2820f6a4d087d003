package calculate_price

import "github.com/emkoumo/bookingapp/pkg/types"

// Request модель запроса на предварительный расчет цены
type Request struct {
	PropertyID int64
	CheckIn    types.Date
	CheckOut   types.Date
}

// Response модель ответа расчета цены.
// Неполное покрытие дат ценами - это не ошибка, а валидный результат:
// Success=false и список непокрытых дат, чтобы клиент показал их все сразу.
type Response struct {
	Success      bool
	TotalPrice   float64
	NightsCount  int
	Breakdown    []NightPrice
	MissingDates []types.Date
}

// NightPrice цена за одну ночь проживания
type NightPrice struct {
	Date  types.Date
	Price float64
}
