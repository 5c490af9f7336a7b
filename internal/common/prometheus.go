package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	ScratchOutcomeTotal        = "scratch_outcome_total"
	PrizeRemaining             = "prize_remaining"
)

// Outcome labels of ScratchOutcomeTotal.
const (
	OutcomeWin        = "win"
	OutcomeMiss       = "miss"
	OutcomeEmptyPool  = "empty_pool"
	OutcomeIneligible = "ineligible"
	OutcomeFailed     = "failed"
)

var (
	PromGauges = map[string]*prometheus.GaugeVec{
		PrizeRemaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: PrizeRemaining,
			Help: "Remaining stock of each prize",
		}, []string{"prize_id", "category"}),
	}

	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"path", "code"}),
		ScratchOutcomeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ScratchOutcomeTotal,
			Help: "Count of scratch attempts by outcome",
		}, []string{"outcome"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"path", "code"}),
	}
)

func IncScratchOutcome(outcome string) {
	PromCounters[ScratchOutcomeTotal].WithLabelValues(outcome).Inc()
}
