package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var refillTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "acex_refills_total",
		Help: "Refill requests by result",
	},
	[]string{"result"},
)

// RecordRefill counts a refill request; granted=false means the cooldown held.
func RecordRefill(granted bool) {
	result := "granted"
	if !granted {
		result = "cooldown"
	}
	refillTotal.WithLabelValues(result).Inc()
}
