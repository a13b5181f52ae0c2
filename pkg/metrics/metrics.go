package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	URLsCheckedTotal   prometheus.Counter
	ThreatMatchesTotal *prometheus.CounterVec
	ChecksTotal        *prometheus.CounterVec
	CheckRetriesTotal  prometheus.Counter
	AlertsSentTotal    *prometheus.CounterVec
	URLsSkippedTotal   prometheus.Counter
)

func Init() {
	URLsCheckedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_checked_total",
			Help: "Total number of URLs submitted to the threat-matching API.",
		},
	)

	ThreatMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "threat_matches_total",
			Help: "Total number of threat matches reported.",
		},
		[]string{"threat_type"},
	)

	ChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checks_total",
			Help: "Total number of batch checks by outcome.",
		},
		[]string{"outcome"}, // outcome: clean, matched, incomplete
	)

	CheckRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "check_retries_total",
			Help: "Total number of retried threat-matching API calls.",
		},
	)

	AlertsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alerts_sent_total",
			Help: "Total number of alert deliveries by status.",
		},
		[]string{"status"}, // status: sent, failed
	)

	URLsSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_skipped_total",
			Help: "Total number of URLs skipped by the recently-checked filter.",
		},
	)
}

// Push delivers the default registry to a Pushgateway. The checker is
// a one-shot job, so metrics are pushed at the end of a run instead of
// being scraped.
func Push(gatewayURL string) error {
	return push.New(gatewayURL, "safebrowse_checker").
		Gatherer(prometheus.DefaultGatherer).
		Push()
}
