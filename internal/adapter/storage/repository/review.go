package repository

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Insert("reviews").
		Columns("member_id", "order_id", "product_id", "content", "rating",
			"height", "weight", "image_url", "created_at").
		Values(review.MemberID, review.OrderID, review.ProductID, review.Content, review.Rating,
			review.Height, review.Weight, review.ImageURL, review.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&review.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return review, nil
}
