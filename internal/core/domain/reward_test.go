package domain_test

import (
	"testing"

	"github.com/refitlab/refitmarket/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRewardProgression_AddExperience(t *testing.T) {
	tests := []struct {
		name       string
		start      domain.RewardProgression
		amount     int64
		resetQuota bool
		expLevel   int64
		expExp     int64
		expUsed    int64
	}{
		{
			name:     "no level up",
			start:    domain.RewardProgression{Level: 1, Experience: 30},
			amount:   50,
			expLevel: 1,
			expExp:   80,
		},
		{
			name:     "carry across level boundary",
			start:    domain.RewardProgression{Level: 3, Experience: 80},
			amount:   150,
			expLevel: 5,
			expExp:   30,
		},
		{
			name:     "exact boundary leaves zero experience",
			start:    domain.RewardProgression{Level: 1, Experience: 0},
			amount:   100,
			expLevel: 2,
			expExp:   0,
		},
		{
			name:     "level capped",
			start:    domain.RewardProgression{Level: 99, Experience: 50},
			amount:   1000,
			expLevel: domain.RewardLevelCap,
			expExp:   50,
		},
		{
			name:     "quota kept across level up by default",
			start:    domain.RewardProgression{Level: 2, Experience: 90, UsedDonationCount: 2},
			amount:   20,
			expLevel: 3,
			expExp:   10,
			expUsed:  2,
		},
		{
			name:       "quota reset when configured",
			start:      domain.RewardProgression{Level: 2, Experience: 90, UsedDonationCount: 2},
			amount:     20,
			resetQuota: true,
			expLevel:   3,
			expExp:     10,
			expUsed:    0,
		},
		{
			name:       "reset flag idle without level up",
			start:      domain.RewardProgression{Level: 2, Experience: 10, UsedDonationCount: 2},
			amount:     20,
			resetQuota: true,
			expLevel:   2,
			expExp:     30,
			expUsed:    2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := test.start
			level := p.AddExperience(test.amount, test.resetQuota)

			assert.Equal(t, test.expLevel, level)
			assert.Equal(t, test.expLevel, p.Level)
			assert.Equal(t, test.expExp, p.Experience)
			assert.Equal(t, test.expUsed, p.UsedDonationCount)
		})
	}
}

func TestRewardProgression_RecordReceipt(t *testing.T) {
	p := domain.RewardProgression{Level: 2}

	assert.NoError(t, p.RecordReceipt())
	assert.NoError(t, p.RecordReceipt())
	assert.Equal(t, int64(2), p.UsedDonationCount)

	err := p.RecordReceipt()
	assert.ErrorIs(t, err, domain.ErrDonationQuotaExceeded)
	assert.Equal(t, int64(2), p.UsedDonationCount)
}

func TestRewardProgression_QuotaSurvivesLevelUp(t *testing.T) {
	p := domain.RewardProgression{Level: 1}

	assert.NoError(t, p.RecordReceipt())
	assert.False(t, p.CanReceive())

	p.AddExperience(100, false)

	assert.Equal(t, int64(2), p.Level)
	assert.True(t, p.CanReceive())
	assert.Equal(t, int64(1), p.UsedDonationCount)
}
