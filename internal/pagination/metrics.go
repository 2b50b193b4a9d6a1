package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// reclampTotal counts second fetches issued after a page came back empty.
var reclampTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "flashdeck_pagination_reclamp_total",
	Help: "Number of page fetches retried after the requested page came back empty",
})
