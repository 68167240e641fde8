package domain

// Member is read-only from the order core's perspective. The
// UnrestrictedReceiver capability bypasses the donation receive quota.
type Member struct {
	ID                   uint64
	Email                string
	Nickname             string
	UnrestrictedReceiver bool
}
