package eventbus

import (
	"context"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "dispatch"

// MetricsPublisher turns events into Prometheus counters.
type MetricsPublisher struct {
	events     *prometheus.CounterVec
	costs      *prometheus.CounterVec
	revenue    prometheus.Counter
	payouts    prometheus.Counter
	dispatched *prometheus.CounterVec
}

// NewMetricsPublisher registers its collectors with reg.
func NewMetricsPublisher(reg prometheus.Registerer) *MetricsPublisher {
	factory := promauto.With(reg)
	return &MetricsPublisher{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{Namespace: metricsNamespace, Name: "events_total", Help: "Domain events by name"},
			[]string{"event"},
		),
		costs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "service_cost_cents_total",
				Help:      "Cost charged for completed services by kind",
			},
			[]string{"kind"},
		),
		revenue: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "revenue_cents_total",
			Help:      "Revenue retained by the platform",
		}),
		payouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "driver_pay_cents_total",
			Help:      "Pay earned by drivers",
		}),
		dispatched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_queued_total",
				Help:      "Service requests queued by zone",
			},
			[]string{"zone"},
		),
	}
}

func (p *MetricsPublisher) Publish(_ context.Context, evts ...events.Event) error {
	for _, e := range evts {
		p.events.WithLabelValues(e.EventName()).Inc()

		switch e := e.(type) {
		case events.ServiceRequested:
			p.dispatched.WithLabelValues(kernel.Zone(e.Zone).String()).Inc()
		case events.ServiceCompleted:
			p.costs.WithLabelValues(e.Service.Kind).Add(float64(e.Service.CostCents))
			p.revenue.Add(float64(e.RevenueCents))
			p.payouts.Add(float64(e.PayCents))
		}
	}
	return nil
}
