package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fishing_catches_total",
			Help: "Successful catches by rarity tier.",
		},
		[]string{"tier"},
	)

	CatchFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fishing_catch_failures_total",
			Help: "Rejected fish requests by reason.",
		},
		[]string{"reason"},
	)

	DistributionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fishing_distributions_total",
			Help: "Completed round distributions (skips excluded).",
		},
	)

	TokensDistributed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fishing_reward_tokens_distributed_total",
			Help: "Reward tokens credited to winners across all rounds.",
		},
	)

	PoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fishing_pool_size",
			Help: "Current round's reward pool.",
		},
	)

	ConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fishing_connected_clients",
			Help: "Websocket connections currently registered.",
		},
	)
)
