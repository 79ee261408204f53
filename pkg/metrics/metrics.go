package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the card protocol engine.
type Metrics struct {
	TapsAccepted    prometheus.Counter
	TapsRejected    *prometheus.CounterVec
	Withdrawals     *prometheus.CounterVec
	TopupsConfirmed prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewFor(prometheus.DefaultRegisterer)
}

// NewFor creates and registers all metrics on the given registerer. Tests
// pass a fresh registry so repeated setup does not collide.
func NewFor(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TapsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "boltcard_taps_accepted_total",
			Help: "Total number of taps that passed SUN authentication",
		}),
		TapsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "boltcard_taps_rejected_total",
			Help: "Total number of rejected taps, by protocol error code",
		}, []string{"code"}),
		Withdrawals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "boltcard_withdrawals_total",
			Help: "Total number of phase-2 withdraw attempts, by outcome",
		}, []string{"outcome"}),
		TopupsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "boltcard_topups_confirmed_total",
			Help: "Total number of top-ups credited on settlement",
		}),
	}
}
