package domain

import "time"

type DonationStatus string

const (
	DonationStatusInspecting DonationStatus = "INSPECTING"
	DonationStatusApproved   DonationStatus = "APPROVED"
	DonationStatusRejected   DonationStatus = "REJECTED"
)

const (
	RewardMethodCredit = "credit"
	RewardMethodPoint  = "point"
)

// DonationProduct is a second-hand item donated by a member, listed for
// other members to receive once it passes inspection.
type DonationProduct struct {
	ID            uint64
	ProductID     uint64
	DonorID       uint64
	Size          string
	ConditionNote string
	Status        DonationStatus
	Stock         int64
	DonatedAt     time.Time
}
