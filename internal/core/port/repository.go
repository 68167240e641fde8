package port

import (
	"context"

	"github.com/refitlab/refitmarket/internal/core/domain"
)

// UpdateRewardFn mutates a reward progression inside a per-member
// serialized transaction (row lock held for the duration of the fn).
type UpdateRewardFn func(*domain.RewardProgression) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Member (read-only collaborator)
	ReadMember(ctx context.Context, memberID uint64) (*domain.Member, error)

	// Catalog (read-only collaborator)
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)
	ReadOption(ctx context.Context, optionID uint64) (*domain.ProductOption, error)

	// Inventory ledger. ReserveStock is a single conditional decrement:
	// zero rows affected means insufficient stock. ReleaseStock is an
	// unconditional increment and always succeeds.
	ReserveStock(ctx context.Context, optionID uint64, quantity int64) error
	ReleaseStock(ctx context.Context, optionID uint64, quantity int64) error

	// Credit account. DebitCredit fails closed with
	// domain.ErrInsufficientCredit; AccrueCredit is unconditional.
	ReadCreditAccount(ctx context.Context, memberID uint64) (*domain.CreditAccount, error)
	DebitCredit(ctx context.Context, memberID uint64, amount int64) error
	AccrueCredit(ctx context.Context, memberID uint64, amount int64) error

	// Order. CreateOrder persists the order, its lines, the payment
	// record (nil for zero-amount settlements) and the earned credit in
	// one transaction - the checkout durability boundary. CancelOrder
	// restocks every line, refunds the used credit and flips payment and
	// order statuses, also in one transaction.
	CreateOrder(ctx context.Context, order *domain.Order, payment *domain.Payment) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersByMember(ctx context.Context, memberID uint64) ([]*domain.Order, error)
	ReadPaymentByOrder(ctx context.Context, orderID uint64) (*domain.Payment, error)
	CancelOrder(ctx context.Context, order *domain.Order) error

	// Donation
	CreateDonationProduct(ctx context.Context, dp *domain.DonationProduct) (*domain.DonationProduct, error)
	ReadDonationProduct(ctx context.Context, donationID uint64) (*domain.DonationProduct, error)
	ReserveDonationStock(ctx context.Context, donationID uint64) error

	// Reward progression
	UpdateRewardProgression(ctx context.Context, memberID uint64, updateFn UpdateRewardFn) (*domain.RewardProgression, error)
	ReadRewardProgression(ctx context.Context, memberID uint64) (*domain.RewardProgression, error)

	// Review
	CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error)
}
