package service

import (
	"context"
	"errors"
	"time"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/refitlab/refitmarket/internal/core/port"
	"go.uber.org/zap"
)

// Checkout runs the whole settlement as one unit: price the lines,
// reserve stock, debit credit, verify the cash part with the gateway and
// persist. Any step failing unwinds everything done before it, in
// reverse order. No stock or credit row stays locked while the gateway
// call is in flight - reservations are committed decrements that get
// compensated, not held.
func (s *Service) Checkout(ctx context.Context, req *port.CheckoutRequest) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, domain.ErrBadRequest
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}
	if req.UsedCredit < 0 {
		return nil, domain.ErrExcessiveCreditUse
	}

	if _, err := s.repo.ReadMember(ctx, req.MemberID); err != nil {
		return nil, err
	}

	// Price every line from the live catalog. The price is fixed into
	// the order line here and never recomputed.
	lines := make([]domain.OrderLine, 0, len(req.Lines))
	var totalAmount int64
	for _, reqLine := range req.Lines {
		option, err := s.repo.ReadOption(ctx, reqLine.OptionID)
		if err != nil {
			return nil, err
		}
		price := option.FinalPrice()
		lines = append(lines, domain.OrderLine{
			ProductID: reqLine.ProductID,
			OptionID:  reqLine.OptionID,
			Quantity:  reqLine.Quantity,
			Price:     price,
		})
		totalAmount += price * reqLine.Quantity
	}

	// Reserve stock line by line. A single failure releases everything
	// reserved earlier in the loop.
	reserved := make([]domain.OrderLine, 0, len(lines))
	for _, line := range lines {
		if err := s.repo.ReserveStock(ctx, line.OptionID, line.Quantity); err != nil {
			s.releaseReserved(ctx, reserved)
			if errors.Is(err, domain.ErrInsufficientStock) {
				s.metrics.CheckoutFailed("insufficient_stock")
				return nil, domain.ErrInsufficientStock
			}
			s.logger.Error("reserve stock", zap.Uint64("option", line.OptionID), zap.Error(err))
			return nil, domain.ErrInternal
		}
		reserved = append(reserved, line)
	}

	if req.UsedCredit > totalAmount {
		s.releaseReserved(ctx, reserved)
		s.metrics.CheckoutFailed("excessive_credit_use")
		return nil, domain.ErrExcessiveCreditUse
	}

	if req.UsedCredit > 0 {
		if err := s.repo.DebitCredit(ctx, req.MemberID, req.UsedCredit); err != nil {
			s.releaseReserved(ctx, reserved)
			if errors.Is(err, domain.ErrInsufficientCredit) {
				s.metrics.CheckoutFailed("insufficient_credit")
				return nil, domain.ErrInsufficientCredit
			}
			s.logger.Error("debit credit", zap.Uint64("member", req.MemberID), zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	finalAmount := totalAmount - req.UsedCredit

	// A zero-amount settlement (fully paid by credit) bypasses the
	// gateway entirely and goes straight to commit.
	if finalAmount > 0 {
		if req.ExternalRef == "" || req.MerchantRef == "" {
			s.rollbackSettlement(ctx, req, reserved)
			return nil, domain.ErrBadRequest
		}

		ok, err := s.gateway.Verify(ctx, req.ExternalRef, req.MerchantRef, finalAmount)
		if err != nil || !ok {
			if err != nil {
				s.logger.Warn("payment verification failed",
					zap.String("external_ref", req.ExternalRef), zap.Error(err))
			}
			s.rollbackSettlement(ctx, req, reserved)
			s.metrics.CheckoutFailed("payment_rejected")
			return nil, domain.ErrPaymentRejected
		}
	}

	earned, err := earnedCredit(finalAmount, req.PaymentMethod)
	if err != nil {
		s.logger.Error("earned credit", zap.Error(err))
		s.rollbackSettlement(ctx, req, reserved)
		return nil, domain.ErrInternal
	}

	now := time.Now()
	order := &domain.Order{
		MemberID:     req.MemberID,
		Status:       domain.OrderStatusOrdered,
		TotalAmount:  totalAmount,
		UsedCredit:   req.UsedCredit,
		FinalAmount:  finalAmount,
		EarnedCredit: earned,
		CreatedAt:    now,
		Lines:        lines,
	}
	if err := order.CheckSettlement(); err != nil {
		s.logger.Error("settlement invariant violated",
			zap.Int64("total", totalAmount),
			zap.Int64("used_credit", req.UsedCredit),
			zap.Int64("final", finalAmount))
		s.rollbackSettlement(ctx, req, reserved)
		return nil, err
	}

	var payment *domain.Payment
	if finalAmount > 0 {
		payment = &domain.Payment{
			MemberID:    req.MemberID,
			ExternalRef: req.ExternalRef,
			MerchantRef: req.MerchantRef,
			Provider:    paymentProvider(req.PaymentMethod),
			Method:      req.PaymentMethod,
			Amount:      finalAmount,
			Status:      domain.PaymentStatusPaid,
			PaidAt:      now,
			CreatedAt:   now,
		}
	}

	created, err := s.repo.CreateOrder(ctx, order, payment)
	if err != nil {
		s.rollbackSettlement(ctx, req, reserved)
		if errors.Is(err, domain.ErrConflictingData) {
			// Same external reference seen before: the real-world
			// payment is already tied to a committed order.
			s.metrics.CheckoutFailed("payment_duplicated")
			return nil, domain.ErrPaymentDuplicated
		}
		s.logger.Error("persist order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.metrics.CheckoutCompleted(req.PaymentMethod)
	return created, nil
}

// CancelOrder reverses a committed checkout. The gateway must confirm
// the cash cancellation before anything local changes; a gateway failure
// leaves the order ORDERED.
func (s *Service) CancelOrder(ctx context.Context, memberID uint64, orderID uint64, reason string) error {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.MemberID != memberID {
		return domain.ErrForbidden
	}
	if order.Status == domain.OrderStatusCanceled {
		return domain.ErrOrderAlreadyCanceled
	}

	if order.FinalAmount > 0 {
		payment, err := s.repo.ReadPaymentByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		ok, err := s.gateway.Cancel(ctx, payment.ExternalRef, reason)
		if err != nil || !ok {
			if err != nil {
				s.logger.Warn("payment cancellation failed",
					zap.Uint64("order", orderID), zap.Error(err))
			}
			return domain.ErrPaymentCancelRejected
		}
	}

	if err := s.repo.CancelOrder(ctx, order); err != nil {
		s.logger.Error("cancel order", zap.Uint64("order", orderID), zap.Error(err))
		return domain.ErrInternal
	}

	s.metrics.OrderCanceled()
	return nil
}

// releaseReserved compensates committed stock decrements. Release always
// succeeds by contract; an error here is infrastructure trouble and gets
// logged loudly instead of masking the original failure.
func (s *Service) releaseReserved(ctx context.Context, reserved []domain.OrderLine) {
	for _, line := range reserved {
		if err := s.repo.ReleaseStock(ctx, line.OptionID, line.Quantity); err != nil {
			s.logger.Error("release stock during rollback",
				zap.Uint64("option", line.OptionID),
				zap.Int64("quantity", line.Quantity),
				zap.Error(err))
		}
	}
}

// rollbackSettlement unwinds the credit debit and the stock
// reservations, in reverse order of how they were taken.
func (s *Service) rollbackSettlement(ctx context.Context, req *port.CheckoutRequest, reserved []domain.OrderLine) {
	if req.UsedCredit > 0 {
		if err := s.repo.AccrueCredit(ctx, req.MemberID, req.UsedCredit); err != nil {
			s.logger.Error("refund credit during rollback",
				zap.Uint64("member", req.MemberID),
				zap.Int64("amount", req.UsedCredit),
				zap.Error(err))
		}
	}
	s.releaseReserved(ctx, reserved)
}

func paymentProvider(paymentMethod string) string {
	switch paymentMethod {
	case domain.PaymentMethodCredit:
		return domain.PaymentMethodCredit
	case domain.PaymentMethodTossPay:
		return domain.PaymentMethodTossPay
	default:
		return domain.PaymentMethodKakaoPay
	}
}
