package port

//go:generate mockgen -source=metrics.go -destination=mock/metrics.go -package=mock
type Metrics interface {
	CheckoutCompleted(paymentMethod string)
	CheckoutFailed(reason string)
	OrderCanceled()
}
