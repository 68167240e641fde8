package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

// ReserveStock is the single conditional decrement behind every
// reservation: stock = stock - q only where stock >= q. Zero affected
// rows means the condition did not hold.
func (r *Repository) ReserveStock(ctx context.Context, optionID uint64, quantity int64) error {
	statement := r.db.QueryBuilder.
		Update("product_options").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"id": optionID}).
		Where(sq.Expr("stock >= ?", quantity))

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ReleaseStock is the compensating increment. It does not require a
// matching reservation to exist.
func (r *Repository) ReleaseStock(ctx context.Context, optionID uint64, quantity int64) error {
	statement := r.db.QueryBuilder.
		Update("product_options").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Where(sq.Eq{"id": optionID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
