package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SuggestionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_requests_total",
			Help: "Total number of suggestion requests by outcome",
		},
		[]string{"status"},
	)

	SuggestionCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suggestion_cache_hits_total",
			Help: "Total number of suggestion cache hits",
		},
	)

	SuggestionCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "suggestion_cache_misses_total",
			Help: "Total number of suggestion cache misses",
		},
	)

	CommunityListRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_list_requests_total",
			Help: "Total number of community recipe listing requests by outcome",
		},
		[]string{"status"},
	)
)
