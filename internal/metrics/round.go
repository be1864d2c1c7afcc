package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	betTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acex_bets_total",
			Help: "Bets placed by game and result",
		},
		[]string{"game", "result"},
	)

	wageredCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acex_wagered_cents_total",
			Help: "Cents debited as stakes by game",
		},
		[]string{"game"},
	)

	settlementTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acex_settlements_total",
			Help: "Round settlements by game and outcome",
		},
		[]string{"game", "outcome"},
	)

	payoutCents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "acex_payout_cents_total",
			Help: "Cents credited by settlements by game",
		},
		[]string{"game"},
	)

	settleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "acex_settle_duration_ms",
			Help:    "Settlement duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"game"},
	)
)

// RecordBet counts a bet attempt. result is "success" or "fail".
func RecordBet(game, result string, stake int64) {
	if result != "success" {
		result = "fail"
	}
	betTotal.WithLabelValues(game, result).Inc()
	if result == "success" && stake > 0 {
		wageredCents.WithLabelValues(game).Add(float64(stake))
	}
}

// RecordStake counts an additional stake taken mid-round.
func RecordStake(game string, stake int64) {
	wageredCents.WithLabelValues(game).Add(float64(stake))
}

func RecordSettlement(game, outcome string, payout int64, started time.Time) {
	settlementTotal.WithLabelValues(game, outcome).Inc()
	if payout > 0 {
		payoutCents.WithLabelValues(game).Add(float64(payout))
	}
	settleDuration.WithLabelValues(game).Observe(float64(time.Since(started).Milliseconds()))
}
