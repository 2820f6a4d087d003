package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	createBooking "github.com/emkoumo/bookingapp/internal/usecase/create_booking"
	"github.com/emkoumo/bookingapp/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() string {
	return `{"propertyIds":[1],"customerName":"Maria Papadopoulou","checkIn":"2025-07-01","checkOut":"2025-07-06","advancePayment":200}`
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Bookings: []createBooking.BookingData{{
		ID:               7,
		PropertyID:       1,
		PropertyName:     "Sea View Apartment",
		CustomerName:     "Maria Papadopoulou",
		CheckIn:          types.DateOf(2025, time.July, 1),
		CheckOut:         types.DateOf(2025, time.July, 6),
		Status:           "active",
		NightsCount:      5,
		TotalPrice:       540,
		AdvancePayment:   200,
		RemainingBalance: 340,
	}}}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	// Даты распарсились в доменный тип
	require.NotNil(t, uc.got)
	assert.Equal(t, "2025-07-01", uc.got.CheckIn.String())

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2025-07-06", resp.Bookings[0].CheckOut)
	assert.Equal(t, 540.00, resp.Bookings[0].TotalPrice)
}

func TestHandle_BadJSON(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"propertyIds":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"propertyIds":[1],"customerName":"x","checkIn":"01.07.2025","checkOut":"2025-07-06"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ConflictError{PropertyNames: []string{"Sea View Apartment", "Garden Studio"}}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusConflict, rec.Code)

	var resp conflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Sea View Apartment", "Garden Studio"}, resp.Properties)
}

func TestHandle_MissingPrices(t *testing.T) {
	uc := &fakeUseCase{err: &domain.MissingPricesError{MissingDates: []types.Date{
		types.DateOf(2025, time.July, 3),
		types.DateOf(2025, time.July, 4),
	}}}

	rec := doRequest(t, uc, validBody())
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp missingPricesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-07-03", "2025-07-04"}, resp.MissingDates)
}

func TestHandle_PropertyNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrPropertyNotFound}

	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrInternal}

	rec := doRequest(t, uc, validBody())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
