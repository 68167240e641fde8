package service

import (
	"context"
	"errors"
	"time"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

// SubmitDonation lists a donated item for inspection and accrues the
// donor's reward: credit when the reward method is credit, plus
// experience equal to the base price of the original product.
func (s *Service) SubmitDonation(ctx context.Context, req *port.DonationRequest) (*domain.DonationProduct, error) {
	product, err := s.repo.ReadProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.ReadMember(ctx, req.DonorID); err != nil {
		return nil, err
	}

	dp := &domain.DonationProduct{
		ProductID:     req.ProductID,
		DonorID:       req.DonorID,
		Size:          req.Size,
		ConditionNote: req.ConditionNote,
		Status:        domain.DonationStatusInspecting,
		Stock:         1,
		DonatedAt:     time.Now(),
	}
	created, err := s.repo.CreateDonationProduct(ctx, dp)
	if err != nil {
		s.logger.Error("create donation product", zap.Error(err))
		return nil, domain.ErrInternal
	}

	reward, err := donationReward(product.BasePrice, req.RewardMethod)
	if err != nil {
		s.logger.Error("donation reward", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if reward > 0 {
		if err := s.repo.AccrueCredit(ctx, req.DonorID, reward); err != nil {
			s.logger.Error("accrue donation reward", zap.Uint64("member", req.DonorID), zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	_, err = s.repo.UpdateRewardProgression(ctx, req.DonorID,
		func(p *domain.RewardProgression) error {
			p.AddExperience(product.BasePrice, s.resetQuotaOnLevelUp)
			return nil
		})
	if err != nil {
		s.logger.Error("accrue donation experience", zap.Uint64("member", req.DonorID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

// ReceiveDonation hands a donated item to a member. Unrestricted
// receivers skip the quota; everyone else consumes one unit of the
// per-level receive counter, which fails closed.
func (s *Service) ReceiveDonation(ctx context.Context, memberID uint64, donationID uint64) error {
	dp, err := s.repo.ReadDonationProduct(ctx, donationID)
	if err != nil {
		return err
	}
	if dp.Status != domain.DonationStatusApproved || dp.Stock <= 0 {
		return domain.ErrDonationNotAvailable
	}

	member, err := s.repo.ReadMember(ctx, memberID)
	if err != nil {
		return err
	}

	if !member.UnrestrictedReceiver {
		_, err := s.repo.UpdateRewardProgression(ctx, memberID,
			func(p *domain.RewardProgression) error {
				return p.RecordReceipt()
			})
		if err != nil {
			if errors.Is(err, domain.ErrDonationQuotaExceeded) {
				return domain.ErrDonationQuotaExceeded
			}
			s.logger.Error("record donation receipt", zap.Uint64("member", memberID), zap.Error(err))
			return domain.ErrInternal
		}
	}

	if err := s.repo.ReserveDonationStock(ctx, donationID); err != nil {
		// The quota unit was consumed for an item someone else got
		// first; give it back.
		if !member.UnrestrictedReceiver {
			s.refundReceipt(ctx, memberID)
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return domain.ErrDonationNotAvailable
		}
		s.logger.Error("reserve donation stock", zap.Uint64("donation", donationID), zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

func (s *Service) refundReceipt(ctx context.Context, memberID uint64) {
	_, err := s.repo.UpdateRewardProgression(ctx, memberID,
		func(p *domain.RewardProgression) error {
			if p.UsedDonationCount > 0 {
				p.UsedDonationCount--
			}
			return nil
		})
	if err != nil {
		s.logger.Error("refund donation receipt", zap.Uint64("member", memberID), zap.Error(err))
	}
}
