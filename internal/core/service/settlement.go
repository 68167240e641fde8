package service

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/refitlab/refitmarket/internal/core/domain"
)

var (
	// 8% of the cash amount comes back as credit after checkout.
	checkoutRewardRate = decimal.MustParse("0.08")
	// 15% of the base price is credited for a donation rewarded in credit.
	donationRewardRate = decimal.MustParse("0.15")

	half = decimal.MustParse("0.5")
)

const (
	reviewRewardBase     = 1000
	reviewRewardBodyInfo = 500
	reviewRewardImage    = 1000
)

// earnedCredit computes the checkout reward: round(finalAmount * 0.08),
// half rounded up. A purchase paid entirely by credit earns nothing.
func earnedCredit(finalAmount int64, paymentMethod string) (int64, error) {
	if finalAmount <= 0 || paymentMethod == domain.PaymentMethodCredit {
		return 0, nil
	}

	amount, err := decimal.New(finalAmount, 0)
	if err != nil {
		return 0, fmt.Errorf("settlement math: %w", err)
	}
	product, err := amount.Mul(checkoutRewardRate)
	if err != nil {
		return 0, fmt.Errorf("settlement math: %w", err)
	}
	shifted, err := product.Add(half)
	if err != nil {
		return 0, fmt.Errorf("settlement math: %w", err)
	}
	result, _, ok := shifted.Floor(0).Int64(0)
	if !ok {
		return 0, fmt.Errorf("settlement math: reward out of range")
	}
	return result, nil
}

// donationReward computes the credit granted to a donor. Only the
// credit reward method pays out; the truncation (no rounding up)
// matches the historical payout.
func donationReward(basePrice int64, rewardMethod string) (int64, error) {
	if rewardMethod != domain.RewardMethodCredit || basePrice <= 0 {
		return 0, nil
	}

	price, err := decimal.New(basePrice, 0)
	if err != nil {
		return 0, fmt.Errorf("donation reward math: %w", err)
	}
	product, err := price.Mul(donationRewardRate)
	if err != nil {
		return 0, fmt.Errorf("donation reward math: %w", err)
	}
	result, _, ok := product.Trunc(0).Int64(0)
	if !ok {
		return 0, fmt.Errorf("donation reward math: reward out of range")
	}
	return result, nil
}

// reviewReward is a fixed accrual raised by body measurements and an
// attached photo.
func reviewReward(review *domain.Review) int64 {
	total := int64(reviewRewardBase)
	if review.HasBodyInfo() {
		total += reviewRewardBodyInfo
	}
	if review.HasImage() {
		total += reviewRewardImage
	}
	return total
}
