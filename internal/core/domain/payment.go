package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
)

const (
	PaymentMethodCredit   = "credit"
	PaymentMethodKakaoPay = "kakaopay"
	PaymentMethodTossPay  = "tosspay"
)

// Payment records one verified gateway settlement. ExternalRef is the
// gateway's payment id and doubles as the idempotency key: a unique
// index guarantees at most one record per real-world payment event.
type Payment struct {
	ID          uint64
	OrderID     uint64
	MemberID    uint64
	ExternalRef string
	MerchantRef string
	Provider    string
	Method      string
	Amount      int64
	Status      PaymentStatus
	PaidAt      time.Time
	CreatedAt   time.Time
}
