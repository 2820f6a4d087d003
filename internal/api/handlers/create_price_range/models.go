package create_price_range

import (
	"time"

	createPriceRange "github.com/emkoumo/bookingapp/internal/usecase/create_price_range"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// CreatePriceRangeRequest HTTP request model
type CreatePriceRangeRequest struct {
	PropertyIDs   []int64 `json:"propertyIds"`
	DateFrom      string  `json:"dateFrom"` // "2025-06-01"
	DateTo        string  `json:"dateTo"`   // "2025-06-30", включительно
	PricePerNight float64 `json:"pricePerNight"`
}

// PriceRangeResponse HTTP response model
type PriceRangeResponse struct {
	ID            int64   `json:"id"`
	PropertyID    int64   `json:"propertyId"`
	PropertyName  string  `json:"propertyName"`
	DateFrom      string  `json:"dateFrom"`
	DateTo        string  `json:"dateTo"`
	PricePerNight float64 `json:"pricePerNight"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// CreatePriceRangeResponse HTTP response со списком созданных диапазонов
type CreatePriceRangeResponse struct {
	PriceRanges []PriceRangeResponse `json:"priceRanges"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreatePriceRangeRequest) ToUseCaseRequest() (*createPriceRange.Request, error) {
	dateFrom, err := types.ParseDate(r.DateFrom)
	if err != nil {
		return nil, err
	}

	dateTo, err := types.ParseDate(r.DateTo)
	if err != nil {
		return nil, err
	}

	return &createPriceRange.Request{
		PropertyIDs:   r.PropertyIDs,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		PricePerNight: r.PricePerNight,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPriceRange.Response) *CreatePriceRangeResponse {
	out := &CreatePriceRangeResponse{
		PriceRanges: make([]PriceRangeResponse, 0, len(resp.PriceRanges)),
	}

	for _, pr := range resp.PriceRanges {
		out.PriceRanges = append(out.PriceRanges, PriceRangeResponse{
			ID:            pr.ID,
			PropertyID:    pr.PropertyID,
			PropertyName:  pr.PropertyName,
			DateFrom:      pr.DateFrom.String(),
			DateTo:        pr.DateTo.String(),
			PricePerNight: pr.PricePerNight,
			CreatedAt:     pr.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     pr.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
