package port

import (
	"context"

	"github.com/refitlab/refitmarket/internal/core/domain"
)

// CheckoutLine is one requested {product, option, quantity} triple.
type CheckoutLine struct {
	ProductID uint64
	OptionID  uint64
	Quantity  int64
}

type CheckoutRequest struct {
	MemberID      uint64
	Lines         []CheckoutLine
	PaymentMethod string
	UsedCredit    int64
	ExternalRef   string
	MerchantRef   string
}

type DonationRequest struct {
	DonorID       uint64
	ProductID     uint64
	Size          string
	ConditionNote string
	RewardMethod  string
}

type ReviewRequest struct {
	MemberID  uint64
	OrderID   uint64
	ProductID uint64
	Content   string
	Rating    int
	Height    int
	Weight    int
	ImageURL  string
}

type Service interface {
	Checkout(ctx context.Context, req *CheckoutRequest) (*domain.Order, error)
	CancelOrder(ctx context.Context, memberID uint64, orderID uint64, reason string) error
	GetOrder(ctx context.Context, memberID uint64, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, memberID uint64) ([]*domain.Order, error)

	GetBalance(ctx context.Context, memberID uint64) (*domain.CreditAccount, error)

	SubmitDonation(ctx context.Context, req *DonationRequest) (*domain.DonationProduct, error)
	ReceiveDonation(ctx context.Context, memberID uint64, donationID uint64) error
	GetRewardProgression(ctx context.Context, memberID uint64) (*domain.RewardProgression, error)

	CreateReview(ctx context.Context, req *ReviewRequest) (*domain.Review, error)
}
