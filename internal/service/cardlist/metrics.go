package cardlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flashdeck_cardlist_duration_seconds",
		Help:    "Duration of card list requests",
		Buckets: prometheus.DefBuckets,
	})

	emptyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flashdeck_cardlist_empty_total",
		Help: "Card list responses with no rows, by reason",
	}, []string{"reason"})
)
