package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by store backend.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airbase_cache_hits_total",
			Help: "Total number of collection cache hits",
		},
		[]string{"store"},
	)

	// CacheMisses tracks cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airbase_cache_misses_total",
			Help: "Total number of collection cache misses",
		},
	)

	// CacheErrors tracks cache operation errors.
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airbase_cache_errors_total",
			Help: "Total number of cache operation errors",
		},
		[]string{"operation"}, // "get", "set", "invalidate"
	)

	// StaleDiscards tracks outcomes dropped because the requester was
	// already detached at delivery time.
	StaleDiscards = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airbase_stale_discards_total",
			Help: "Total number of fetch outcomes discarded for detached requesters",
		},
	)
)
