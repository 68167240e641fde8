package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

func (r *Repository) CreateDonationProduct(ctx context.Context, dp *domain.DonationProduct) (*domain.DonationProduct, error) {
	statement := r.db.QueryBuilder.
		Insert("donation_products").
		Columns("product_id", "donor_id", "size", "condition_note", "status", "stock", "donated_at").
		Values(dp.ProductID, dp.DonorID, dp.Size, dp.ConditionNote, dp.Status, dp.Stock, dp.DonatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&dp.ID)
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (r *Repository) ReadDonationProduct(ctx context.Context, donationID uint64) (*domain.DonationProduct, error) {
	statement := r.db.QueryBuilder.
		Select("id", "product_id", "donor_id", "size", "condition_note", "status", "stock", "donated_at").
		From("donation_products").
		Where(sq.Eq{"id": donationID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	dp := domain.DonationProduct{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&dp.ID,
		&dp.ProductID,
		&dp.DonorID,
		&dp.Size,
		&dp.ConditionNote,
		&dp.Status,
		&dp.Stock,
		&dp.DonatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &dp, nil
}

// ReserveDonationStock claims the single unit of a donated item with
// the same conditional-decrement shape as product stock.
func (r *Repository) ReserveDonationStock(ctx context.Context, donationID uint64) error {
	statement := r.db.QueryBuilder.
		Update("donation_products").
		Set("stock", sq.Expr("stock - 1")).
		Where(sq.Eq{"id": donationID}).
		Where(sq.Expr("stock >= 1")).
		Where(sq.Eq{"status": domain.DonationStatusApproved})

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
