package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusOrdered  OrderStatus = "ORDERED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

type Order struct {
	ID           uint64
	MemberID     uint64
	Status       OrderStatus
	TotalAmount  int64
	UsedCredit   int64
	FinalAmount  int64
	EarnedCredit int64
	CreatedAt    time.Time
	Lines        []OrderLine
}

// OrderLine fixes Price at checkout time. It is never recomputed from
// the catalog afterwards.
type OrderLine struct {
	ID        uint64
	OrderID   uint64
	ProductID uint64
	OptionID  uint64
	Quantity  int64
	Price     int64
}

// CheckSettlement verifies total == usedCredit + finalAmount with a
// non-negative cash part. A failure here means an atomicity guarantee
// was broken somewhere.
func (o *Order) CheckSettlement() error {
	if o.FinalAmount < 0 || o.UsedCredit < 0 {
		return ErrSettlementMismatch
	}
	if o.TotalAmount != o.UsedCredit+o.FinalAmount {
		return ErrSettlementMismatch
	}
	return nil
}
