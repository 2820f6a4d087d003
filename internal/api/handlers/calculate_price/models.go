package calculate_price

import (
	calculatePrice "github.com/emkoumo/bookingapp/internal/usecase/calculate_price"
)

// NightPriceResponse цена за одну ночь
type NightPriceResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// CalculatePriceResponse HTTP response model.
// При success=false missingDates содержит все непокрытые даты.
type CalculatePriceResponse struct {
	Success      bool                 `json:"success"`
	TotalPrice   float64              `json:"totalPrice,omitempty"`
	NightsCount  int                  `json:"nightsCount,omitempty"`
	Breakdown    []NightPriceResponse `json:"breakdown,omitempty"`
	MissingDates []string             `json:"missingDates,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *CalculatePriceResponse {
	out := &CalculatePriceResponse{
		Success:     resp.Success,
		TotalPrice:  resp.TotalPrice,
		NightsCount: resp.NightsCount,
	}

	for _, night := range resp.Breakdown {
		out.Breakdown = append(out.Breakdown, NightPriceResponse{
			Date:  night.Date.String(),
			Price: night.Price,
		})
	}

	for _, d := range resp.MissingDates {
		out.MissingDates = append(out.MissingDates, d.String())
	}

	return out
}
