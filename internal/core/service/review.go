package service

import (
	"context"
	"errors"
	"time"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

// CreateReview stores a purchase review and accrues the review reward.
// One review per (member, order, product); a duplicate earns nothing.
func (s *Service) CreateReview(ctx context.Context, req *port.ReviewRequest) (*domain.Review, error) {
	if req.Content == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrBadRequest
	}

	review := &domain.Review{
		MemberID:  req.MemberID,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Content:   req.Content,
		Rating:    req.Rating,
		Height:    req.Height,
		Weight:    req.Weight,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}

	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrReviewAlreadyRewarded
		}
		s.logger.Error("create review", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if err := s.repo.AccrueCredit(ctx, req.MemberID, reviewReward(review)); err != nil {
		s.logger.Error("accrue review reward", zap.Uint64("member", req.MemberID), zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}
