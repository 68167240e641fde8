package domain

// CreditAccount holds a member's internal balance usable as partial
// payment. The balance never goes below zero; every debit is a
// conditional update at the storage layer.
type CreditAccount struct {
	MemberID uint64
	Balance  int64
}
