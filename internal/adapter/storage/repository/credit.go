package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

func (r *Repository) ReadCreditAccount(ctx context.Context, memberID uint64) (*domain.CreditAccount, error) {
	statement := r.db.QueryBuilder.
		Select("member_id", "balance").
		From("credit_accounts").
		Where(sq.Eq{"member_id": memberID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.CreditAccount{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.MemberID,
		&account.Balance,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// A member without an account row simply has no credit yet.
			return &domain.CreditAccount{MemberID: memberID}, nil
		}
		return nil, err
	}

	return &account, nil
}

// DebitCredit decrements the balance in the same atomic step as the
// balance check. Zero affected rows means the balance was short.
func (r *Repository) DebitCredit(ctx context.Context, memberID uint64, amount int64) error {
	statement := r.db.QueryBuilder.
		Update("credit_accounts").
		Set("balance", sq.Expr("balance - ?", amount)).
		Where(sq.Eq{"member_id": memberID}).
		Where(sq.Expr("balance >= ?", amount))

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientCredit
	}
	return nil
}

// AccrueCredit is an unconditional monotonic increment, creating the
// account row on first accrual.
func (r *Repository) AccrueCredit(ctx context.Context, memberID uint64, amount int64) error {
	statement := r.db.QueryBuilder.
		Insert("credit_accounts").
		Columns("member_id", "balance").
		Values(memberID, amount).
		Suffix("ON CONFLICT (member_id) DO UPDATE SET balance = credit_accounts.balance + EXCLUDED.balance")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
