package models

import (
	"time"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// PriceRangeResponse ответ с данными ценового диапазона
type PriceRangeResponse struct {
	ID            int64   `json:"id"`
	PropertyID    int64   `json:"propertyId"`
	DateFrom      string  `json:"dateFrom"` // "2025-06-01"
	DateTo        string  `json:"dateTo"`   // "2025-06-30", включительно
	PricePerNight float64 `json:"pricePerNight"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PriceRangeListResponse ответ со списком диапазонов
type PriceRangeListResponse struct {
	PriceRanges []PriceRangeResponse `json:"priceRanges"`
}

// FromDomainPriceRange конвертирует domain модель в DTO
func FromDomainPriceRange(p *domain.PriceRange) *PriceRangeResponse {
	if p == nil {
		return nil
	}

	return &PriceRangeResponse{
		ID:            p.ID,
		PropertyID:    p.PropertyID,
		DateFrom:      p.DateFrom.String(),
		DateTo:        p.DateTo.String(),
		PricePerNight: p.PricePerNight,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPriceRangeList конвертирует список domain моделей в DTO
func FromDomainPriceRangeList(ranges []*domain.PriceRange) *PriceRangeListResponse {
	if ranges == nil {
		return &PriceRangeListResponse{
			PriceRanges: []PriceRangeResponse{},
		}
	}

	resp := &PriceRangeListResponse{
		PriceRanges: make([]PriceRangeResponse, len(ranges)),
	}

	for i, pr := range ranges {
		if prResp := FromDomainPriceRange(pr); prResp != nil {
			resp.PriceRanges[i] = *prResp
		}
	}

	return resp
}
