package models

import (
	"time"

	"github.com/emkoumo/bookingapp/internal/domain"
)

// BlockedDateResponse ответ с данными блокировки дат
type BlockedDateResponse struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"propertyId"`
	StartDate  string  `json:"startDate"` // "2025-07-01"
	EndDate    string  `json:"endDate"`   // "2025-07-05", включительно
	Reason     *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BlockedDateListResponse ответ со списком блокировок
type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) *BlockedDateResponse {
	if b == nil {
		return nil
	}

	return &BlockedDateResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		StartDate:  b.StartDate.String(),
		EndDate:    b.EndDate.String(),
		Reason:     b.Reason,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в DTO
func FromDomainBlockedDateList(blocks []*domain.BlockedDate) *BlockedDateListResponse {
	if blocks == nil {
		return &BlockedDateListResponse{
			BlockedDates: []BlockedDateResponse{},
		}
	}

	resp := &BlockedDateListResponse{
		BlockedDates: make([]BlockedDateResponse, len(blocks)),
	}

	for i, block := range blocks {
		if blockResp := FromDomainBlockedDate(block); blockResp != nil {
			resp.BlockedDates[i] = *blockResp
		}
	}

	return resp
}
