package service

import (
	"context"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) GetOrder(ctx context.Context, memberID uint64, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.MemberID != memberID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, memberID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByMember(ctx, memberID)
	if err != nil {
		s.logger.Error("list orders", zap.Uint64("member", memberID), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) GetBalance(ctx context.Context, memberID uint64) (*domain.CreditAccount, error) {
	account, err := s.repo.ReadCreditAccount(ctx, memberID)
	if err != nil {
		s.logger.Error("read credit account", zap.Uint64("member", memberID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetRewardProgression(ctx context.Context, memberID uint64) (*domain.RewardProgression, error) {
	progression, err := s.repo.ReadRewardProgression(ctx, memberID)
	if err != nil {
		s.logger.Error("read reward progression", zap.Uint64("member", memberID), zap.Error(err))
		return nil, err
	}
	return progression, nil
}
