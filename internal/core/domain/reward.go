package domain

const (
	// RewardLevelCap is the highest reachable donation level.
	RewardLevelCap = 100
	// ExpPerLevel is the experience needed for one level.
	ExpPerLevel = 100
)

// RewardProgression is the per-member experience/level/quota state
// driven by donation events. Experience stays in the 0-99 band, levels
// run 1-100, and UsedDonationCount bounds how many donated items a
// member may receive at the current level.
type RewardProgression struct {
	MemberID          uint64
	Experience        int64
	Level             int64
	UsedDonationCount int64
}

// AddExperience accrues experience and applies level-ups. Whether a
// level-up resets the receive counter is an explicit configuration
// choice; the historical behavior keeps the counter as is.
func (r *RewardProgression) AddExperience(amount int64, resetQuotaOnLevelUp bool) int64 {
	total := r.Experience + amount
	gained := total / ExpPerLevel

	r.Level = min(RewardLevelCap, r.Level+gained)
	r.Experience = total % ExpPerLevel

	if gained > 0 && resetQuotaOnLevelUp {
		r.UsedDonationCount = 0
	}
	return r.Level
}

// CanReceive reports whether the member may still receive a donated
// item at the current level.
func (r *RewardProgression) CanReceive() bool {
	return r.UsedDonationCount < r.Level
}

// RecordReceipt consumes one unit of the receive quota. Fails closed.
func (r *RewardProgression) RecordReceipt() error {
	if !r.CanReceive() {
		return ErrDonationQuotaExceeded
	}
	r.UsedDonationCount++
	return nil
}
