package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/refitlab/refitmarket/internal/adapter/storage"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) ReadMember(ctx context.Context, memberID uint64) (*domain.Member, error) {
	statement := r.db.QueryBuilder.
		Select("id", "email", "nickname", "unrestricted_receiver").
		From("members").
		Where(sq.Eq{"id": memberID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	member := domain.Member{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&member.ID,
		&member.Email,
		&member.Nickname,
		&member.UnrestrictedReceiver,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &member, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "base_price").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.BasePrice,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

// ReadOption joins the base price in so the caller can fix a final
// price without a second round trip.
func (r *Repository) ReadOption(ctx context.Context, optionID uint64) (*domain.ProductOption, error) {
	statement := r.db.QueryBuilder.
		Select("o.id", "o.product_id", "o.size", "o.price_adjustment", "o.stock", "p.base_price").
		From("product_options o").
		Join("products p ON p.id = o.product_id").
		Where(sq.Eq{"o.id": optionID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	option := domain.ProductOption{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&option.ID,
		&option.ProductID,
		&option.Size,
		&option.PriceAdjustment,
		&option.Stock,
		&option.BasePrice,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &option, nil
}
