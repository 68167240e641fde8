package service

import (
	"testing"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEarnedCredit(t *testing.T) {
	tests := []struct {
		name        string
		finalAmount int64
		method      string
		expReward   int64
	}{
		{"exact multiple", 1250, domain.PaymentMethodKakaoPay, 100},
		{"fraction rounded down", 1256, domain.PaymentMethodKakaoPay, 100},
		{"fraction rounded up", 1260, domain.PaymentMethodKakaoPay, 101},
		{"half rounds up", 9100, domain.PaymentMethodTossPay, 728},
		{"small amount", 10, domain.PaymentMethodKakaoPay, 1},
		{"credit purchase earns nothing", 1250, domain.PaymentMethodCredit, 0},
		{"zero cash part earns nothing", 0, domain.PaymentMethodKakaoPay, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reward, err := earnedCredit(test.finalAmount, test.method)
			assert.NoError(t, err)
			assert.Equal(t, test.expReward, reward)
		})
	}
}

func TestDonationReward(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int64
		method    string
		expReward int64
	}{
		{"truncated not rounded", 1999, domain.RewardMethodCredit, 299},
		{"exact multiple", 2000, domain.RewardMethodCredit, 300},
		{"point method pays nothing", 2000, domain.RewardMethodPoint, 0},
		{"zero base price", 0, domain.RewardMethodCredit, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			reward, err := donationReward(test.basePrice, test.method)
			assert.NoError(t, err)
			assert.Equal(t, test.expReward, reward)
		})
	}
}

func TestReviewReward(t *testing.T) {
	tests := []struct {
		name      string
		review    domain.Review
		expReward int64
	}{
		{"base only", domain.Review{Content: "fits well", Rating: 4}, 1000},
		{"with body info", domain.Review{Content: "fits well", Rating: 4, Height: 178, Weight: 72}, 1500},
		{"with photo", domain.Review{Content: "fits well", Rating: 4, ImageURL: "https://cdn.example.com/r/1.jpg"}, 2000},
		{"with everything", domain.Review{Content: "fits well", Rating: 4, Height: 178, Weight: 72, ImageURL: "https://cdn.example.com/r/1.jpg"}, 2500},
		{"partial body info does not count", domain.Review{Content: "fits well", Rating: 4, Height: 178}, 1000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expReward, reviewReward(&test.review))
		})
	}
}
