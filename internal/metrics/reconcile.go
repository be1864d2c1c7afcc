package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acex_reconciled_rounds_total",
			Help: "Rounds handled by the reconciler by action and result",
		},
		[]string{"action", "result"},
	)

	staleRounds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "acex_stale_rounds",
			Help: "Unsettled rounds found by the last reconcile pass",
		},
	)
)

// RecordReconcile counts one round; action is "settle" or "expire".
func RecordReconcile(action string, err error) {
	result := "success"
	if err != nil {
		result = "fail"
	}
	reconcileTotal.WithLabelValues(action, result).Inc()
}

func SetStaleRounds(n int) {
	staleRounds.Set(float64(n))
}
