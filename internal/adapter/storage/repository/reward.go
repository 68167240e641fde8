package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
)

func (r *Repository) ReadRewardProgression(ctx context.Context, memberID uint64) (*domain.RewardProgression, error) {
	statement := r.db.QueryBuilder.
		Select("member_id", "experience", "level", "used_donation_count").
		From("reward_progressions").
		Where(sq.Eq{"member_id": memberID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	progression := domain.RewardProgression{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&progression.MemberID,
		&progression.Experience,
		&progression.Level,
		&progression.UsedDonationCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &domain.RewardProgression{MemberID: memberID, Level: 1}, nil
		}
		return nil, err
	}

	return &progression, nil
}

// UpdateRewardProgression serializes per-member mutation: the row is
// created if missing, locked with FOR UPDATE, handed to updateFn and
// written back in the same transaction. A business error from updateFn
// rolls everything back.
func (r *Repository) UpdateRewardProgression(ctx context.Context, memberID uint64,
	updateFn port.UpdateRewardFn) (*domain.RewardProgression, error) {
	progression := domain.RewardProgression{}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		insertSt := r.db.QueryBuilder.
			Insert("reward_progressions").
			Columns("member_id", "experience", "level", "used_donation_count").
			Values(memberID, 0, 1, 0).
			Suffix("ON CONFLICT (member_id) DO NOTHING")

		sql, args, err := insertSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		selectSt := r.db.QueryBuilder.
			Select("member_id", "experience", "level", "used_donation_count").
			From("reward_progressions").
			Where(sq.Eq{"member_id": memberID}).
			Suffix("FOR UPDATE")

		sql, args, err = selectSt.ToSql()
		if err != nil {
			return err
		}
		err = tx.QueryRow(ctx, sql, args...).Scan(
			&progression.MemberID,
			&progression.Experience,
			&progression.Level,
			&progression.UsedDonationCount,
		)
		if err != nil {
			return err
		}

		if err := updateFn(&progression); err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("reward_progressions").
			Set("experience", progression.Experience).
			Set("level", progression.Level).
			Set("used_donation_count", progression.UsedDonationCount).
			Where(sq.Eq{"member_id": memberID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &progression, nil
}
