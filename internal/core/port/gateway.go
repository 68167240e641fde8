package port

import "context"

// PaymentGateway crosses into untrusted third-party infrastructure. It
// may be slow and may be asked twice about the same reference; callers
// must treat any error as a rejection (fail closed).
//
//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	Verify(ctx context.Context, externalRef string, merchantRef string, amount int64) (bool, error)
	Cancel(ctx context.Context, externalRef string, reason string) (bool, error)
}
