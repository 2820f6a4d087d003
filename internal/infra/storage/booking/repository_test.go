package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emkoumo/bookingapp/internal/domain"
	"github.com/emkoumo/bookingapp/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func bookingRow(id int64) *sqlmock.Rows {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(bookingColumns).
		AddRow(
			id, int64(1), "Maria Papadopoulou", nil, nil,
			time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 6, 0, 0, 0, 0, time.UTC),
			"active", 540.0, 200.0, 340.0, nil, nil,
			false, nil, nil, nil, now, now,
		)
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRow(1))

	booking, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, "2025-07-01", booking.CheckIn.String())
	assert.Equal(t, "2025-07-06", booking.CheckOut.String())
	assert.Equal(t, domain.StatusActive, booking.Status)
	assert.Equal(t, 540.0, booking.TotalPrice)
	assert.Nil(t, booking.CancelledAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bookings (.+) RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), now, now))

	booking := &domain.Booking{
		PropertyID:   1,
		CustomerName: "Maria Papadopoulou",
		CheckIn:      types.DateOf(2025, time.July, 1),
		CheckOut:     types.DateOf(2025, time.July, 6),
		Status:       domain.StatusActive,
		TotalPrice:   540,
	}

	saved, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, now, saved.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionConstraint(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23P01"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		PropertyID:   1,
		CustomerName: "Maria Papadopoulou",
		CheckIn:      types.DateOf(2025, time.July, 1),
		CheckOut:     types.DateOf(2025, time.July, 6),
		Status:       domain.StatusActive,
	})
	assert.ErrorIs(t, err, ErrOverlapConstraint)
}

func TestListActive(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE property_id = \$1 AND status = \$2 ORDER BY check_in ASC`).
		WithArgs(int64(1), string(domain.StatusActive)).
		WillReturnRows(bookingRow(1))

	bookings, err := repo.ListActive(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActive_ExcludesID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE property_id = \$1 AND status = \$2 AND id <> \$3`).
		WithArgs(int64(1), string(domain.StatusActive), int64(5)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	excludeID := int64(5)
	bookings, err := repo.ListActive(context.Background(), 1, &excludeID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCancel(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancelled_at = NOW\(\), updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(string(domain.StatusCancelled), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Cancel(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Cancel(context.Background(), 42), ErrBookingNotFound)
}
