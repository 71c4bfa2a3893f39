// Package metrics счетчики prometheus для процесса рассмотрения заявок.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cash_review"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeBusy    = "busy"
)

type Recorder struct {
	resolutions   *prometheus.CounterVec
	fetches       *prometheus.CounterVec
	pendingClaims prometheus.Gauge
}

// New создает счетчики и регистрирует их в reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Cash payment resolutions by decision and outcome.",
		}, []string{"decision", "outcome"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetches_total",
			Help:      "Review list fetches by outcome.",
		}, []string{"outcome"}),
		pendingClaims: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_claims",
			Help:      "Pending claims seen by the last successful fetch.",
		}),
	}
	for _, c := range []prometheus.Collector{r.resolutions, r.fetches, r.pendingClaims} {
		if err := reg.Register(c); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}
	return r, nil
}

func (r *Recorder) ObserveResolution(decision, outcome string) {
	r.resolutions.WithLabelValues(decision, outcome).Inc()
}

func (r *Recorder) ObserveFetch(pending int, err error) {
	if err != nil {
		r.fetches.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	r.fetches.WithLabelValues(OutcomeSuccess).Inc()
	r.pendingClaims.Set(float64(pending))
}
