package pricerange

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/emkoumo/bookingapp/internal/domain"
	"github.com/emkoumo/bookingapp/pkg/dbmetrics"
	"github.com/emkoumo/bookingapp/pkg/psqlbuilder"
)

var priceRangeColumns = []string{
	"id",
	"property_id",
	"date_from",
	"date_to",
	"price_per_night",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с ценовыми диапазонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ценовых диапазонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ценовой диапазон
func (r *Repository) Create(ctx context.Context, pr *domain.PriceRange) (*domain.PriceRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("price_ranges").
		Columns("property_id", "date_from", "date_to", "price_per_night").
		Values(pr.PropertyID, pr.DateFrom, pr.DateTo, pr.PricePerNight).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pr.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pr.CreatedAt = createdAt.Time
	pr.UpdatedAt = updatedAt.Time

	return pr, nil
}

// GetByID получает ценовой диапазон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PriceRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(priceRangeColumns...).
		From("price_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var pr domain.PriceRange
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pr.ID,
		&pr.PropertyID,
		&pr.DateFrom,
		&pr.DateTo,
		&pr.PricePerNight,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPriceRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan price range: %v", ErrScanRow, err)
	}

	pr.CreatedAt = createdAt.Time
	pr.UpdatedAt = updatedAt.Time

	return &pr, nil
}

// ListByProperty получает все ценовые диапазоны объекта, отсортированные по дате.
// Внутри транзакции строки блокируются через FOR UPDATE.
func (r *Repository) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.PriceRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(priceRangeColumns...).
		From("price_ranges").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("date_from ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProperty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProperty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]*domain.PriceRange, 0)
	for rows.Next() {
		var pr domain.PriceRange
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&pr.ID,
			&pr.PropertyID,
			&pr.DateFrom,
			&pr.DateTo,
			&pr.PricePerNight,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProperty - scan row: %v", ErrScanRow, err)
		}

		pr.CreatedAt = createdAt.Time
		pr.UpdatedAt = updatedAt.Time
		ranges = append(ranges, &pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProperty - rows error: %v", ErrScanRow, err)
	}

	return ranges, nil
}

// Update обновляет ценовой диапазон
func (r *Repository) Update(ctx context.Context, pr *domain.PriceRange) (*domain.PriceRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("price_ranges").
		Set("date_from", pr.DateFrom).
		Set("date_to", pr.DateTo).
		Set("price_per_night", pr.PricePerNight).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pr.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPriceRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	pr.UpdatedAt = updatedAt.Time

	return pr, nil
}

// Delete удаляет ценовой диапазон
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("price_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPriceRangeNotFound
	}

	return nil
}
