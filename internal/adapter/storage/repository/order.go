package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

// CreateOrder is the checkout durability boundary: the order, its
// lines, the payment record and the earned credit commit as one
// transaction. A duplicate external payment reference surfaces as
// domain.ErrConflictingData via the unique index on payments.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order, payment *domain.Payment) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.
			Insert("orders").
			Columns("member_id", "status", "total_amount", "used_credit",
				"final_amount", "earned_credit", "created_at").
			Values(order.MemberID, order.Status, order.TotalAmount, order.UsedCredit,
				order.FinalAmount, order.EarnedCredit, order.CreatedAt).
			Suffix("RETURNING id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for i := range order.Lines {
			line := &order.Lines[i]
			line.OrderID = order.ID

			lineSt := r.db.QueryBuilder.
				Insert("order_lines").
				Columns("order_id", "product_id", "option_id", "quantity", "price").
				Values(line.OrderID, line.ProductID, line.OptionID, line.Quantity, line.Price).
				Suffix("RETURNING id")

			sql, args, err = lineSt.ToSql()
			if err != nil {
				return err
			}
			err = tx.QueryRow(ctx, sql, args...).Scan(&line.ID)
			if err != nil {
				return err
			}
		}

		if payment != nil {
			payment.OrderID = order.ID

			paymentSt := r.db.QueryBuilder.
				Insert("payments").
				Columns("order_id", "member_id", "external_ref", "merchant_ref",
					"provider", "method", "amount", "status", "paid_at", "created_at").
				Values(payment.OrderID, payment.MemberID, payment.ExternalRef, payment.MerchantRef,
					payment.Provider, payment.Method, payment.Amount, payment.Status,
					payment.PaidAt, payment.CreatedAt).
				Suffix("RETURNING id")

			sql, args, err = paymentSt.ToSql()
			if err != nil {
				return err
			}
			err = tx.QueryRow(ctx, sql, args...).Scan(&payment.ID)
			if err != nil {
				return err
			}
		}

		if order.EarnedCredit > 0 {
			creditSt := r.db.QueryBuilder.
				Insert("credit_accounts").
				Columns("member_id", "balance").
				Values(order.MemberID, order.EarnedCredit).
				Suffix("ON CONFLICT (member_id) DO UPDATE SET balance = credit_accounts.balance + EXCLUDED.balance")

			sql, args, err = creditSt.ToSql()
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "member_id", "status", "total_amount", "used_credit",
			"final_amount", "earned_credit", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.MemberID,
		&order.Status,
		&order.TotalAmount,
		&order.UsedCredit,
		&order.FinalAmount,
		&order.EarnedCredit,
		&order.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	lines, err := r.readOrderLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (r *Repository) readOrderLines(ctx context.Context, orderID uint64) ([]domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "product_id", "option_id", "quantity", "price").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		line := domain.OrderLine{}
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.OptionID,
			&line.Quantity,
			&line.Price,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *Repository) ListOrdersByMember(ctx context.Context, memberID uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "member_id", "status", "total_amount", "used_credit",
			"final_amount", "earned_credit", "created_at").
		From("orders").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.MemberID,
			&order.Status,
			&order.TotalAmount,
			&order.UsedCredit,
			&order.FinalAmount,
			&order.EarnedCredit,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ReadPaymentByOrder(ctx context.Context, orderID uint64) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "member_id", "external_ref", "merchant_ref",
			"provider", "method", "amount", "status", "paid_at", "created_at").
		From("payments").
		Where(sq.Eq{"order_id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment := domain.Payment{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.MemberID,
		&payment.ExternalRef,
		&payment.MerchantRef,
		&payment.Provider,
		&payment.Method,
		&payment.Amount,
		&payment.Status,
		&payment.PaidAt,
		&payment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// CancelOrder reverses a committed order in one transaction: restock
// every line, refund the used credit, flip the payment to cancelled and
// the order to CANCELED. The status condition on the final update makes
// a concurrent double-cancel lose cleanly.
func (r *Repository) CancelOrder(ctx context.Context, order *domain.Order) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, line := range order.Lines {
			restockSt := r.db.QueryBuilder.
				Update("product_options").
				Set("stock", sq.Expr("stock + ?", line.Quantity)).
				Where(sq.Eq{"id": line.OptionID})

			sql, args, err := restockSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		if order.UsedCredit > 0 {
			refundSt := r.db.QueryBuilder.
				Insert("credit_accounts").
				Columns("member_id", "balance").
				Values(order.MemberID, order.UsedCredit).
				Suffix("ON CONFLICT (member_id) DO UPDATE SET balance = credit_accounts.balance + EXCLUDED.balance")

			sql, args, err := refundSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		if order.FinalAmount > 0 {
			paymentSt := r.db.QueryBuilder.
				Update("payments").
				Set("status", domain.PaymentStatusCancelled).
				Where(sq.Eq{"order_id": order.ID})

			sql, args, err := paymentSt.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		orderSt := r.db.QueryBuilder.
			Update("orders").
			Set("status", domain.OrderStatusCanceled).
			Where(sq.Eq{"id": order.ID}).
			Where(sq.Eq{"status": domain.OrderStatusOrdered})

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrOrderAlreadyCanceled
		}

		return nil
	})
}
