package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BetsSettled counts settled bets by outcome
	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_engine_bets_settled_total",
		Help: "Number of bets settled, by outcome",
	}, []string{"outcome"})

	// SettlementErrors counts per-bet settlement failures
	SettlementErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bet_engine_settlement_errors_total",
		Help: "Number of per-bet settlement failures",
	})

	// SweepDuration observes batch settlement sweep durations
	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bet_engine_sweep_duration_seconds",
		Help:    "Duration of settlement sweeps",
		Buckets: prometheus.DefBuckets,
	})

	// BestPriceLookups counts line-shopping lookups by result
	BestPriceLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bet_engine_best_price_lookups_total",
		Help: "Number of best-price lookups, by result (found/none)",
	}, []string{"result"})
)
