package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/refitlab/refitmarket/internal/core/port"
)

// Prometheus counters for coordinator outcomes.
type Metrics struct {
	checkoutsCompleted *prometheus.CounterVec
	checkoutsFailed    *prometheus.CounterVec
	ordersCanceled     prometheus.Counter
}

func New() port.Metrics {
	m := &Metrics{
		checkoutsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refitmarket",
			Name:      "checkouts_completed_total",
			Help:      "Committed checkouts by payment method.",
		}, []string{"method"}),
		checkoutsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "refitmarket",
			Name:      "checkouts_failed_total",
			Help:      "Rolled-back checkouts by failure reason.",
		}, []string{"reason"}),
		ordersCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "refitmarket",
			Name:      "orders_canceled_total",
			Help:      "Orders canceled after gateway confirmation.",
		}),
	}
	prometheus.MustRegister(m.checkoutsCompleted, m.checkoutsFailed, m.ordersCanceled)
	return m
}

func (m *Metrics) CheckoutCompleted(paymentMethod string) {
	m.checkoutsCompleted.WithLabelValues(paymentMethod).Inc()
}

func (m *Metrics) CheckoutFailed(reason string) {
	m.checkoutsFailed.WithLabelValues(reason).Inc()
}

func (m *Metrics) OrderCanceled() {
	m.ordersCanceled.Inc()
}

// Nop satisfies port.Metrics for tests and wiring without Prometheus.
type Nop struct{}

func (Nop) CheckoutCompleted(string) {}
func (Nop) CheckoutFailed(string)    {}
func (Nop) OrderCanceled()           {}
