package create_blocked_date

import (
	"time"

	createBlockedDate "github.com/emkoumo/bookingapp/internal/usecase/create_blocked_date"
	"github.com/emkoumo/bookingapp/pkg/types"
)

// CreateBlockedDateRequest HTTP request model
type CreateBlockedDateRequest struct {
	PropertyIDs []int64 `json:"propertyIds"`
	StartDate   string  `json:"startDate"` // "2025-07-01"
	EndDate     string  `json:"endDate"`   // "2025-07-05", включительно
	Reason      *string `json:"reason,omitempty"`
}

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID           int64   `json:"id"`
	PropertyID   int64   `json:"propertyId"`
	PropertyName string  `json:"propertyName"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Reason       *string `json:"reason,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// CreateBlockedDateResponse HTTP response со списком созданных блокировок
type CreateBlockedDateResponse struct {
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBlockedDateRequest) ToUseCaseRequest() (*createBlockedDate.Request, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBlockedDate.Request{
		PropertyIDs: r.PropertyIDs,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBlockedDate.Response) *CreateBlockedDateResponse {
	out := &CreateBlockedDateResponse{
		BlockedDates: make([]BlockedDateResponse, 0, len(resp.BlockedDates)),
	}

	for _, b := range resp.BlockedDates {
		out.BlockedDates = append(out.BlockedDates, BlockedDateResponse{
			ID:           b.ID,
			PropertyID:   b.PropertyID,
			PropertyName: b.PropertyName,
			StartDate:    b.StartDate.String(),
			EndDate:      b.EndDate.String(),
			Reason:       b.Reason,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
