package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

var (
	ReviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_review_reviews_total",
			Help: "Total number of single account reviews",
		},
		[]string{"platform", "outcome"},
	)

	ReviewDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "budget_review_review_duration_seconds",
			Help:    "Single account review duration in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"platform"},
	)

	BatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_review_batch_runs_total",
			Help: "Total number of batch review runs",
		},
		[]string{"platform"},
	)

	BatchClientsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_review_batch_clients_total",
			Help: "Total number of clients processed by batch runs",
		},
		[]string{"platform", "outcome"},
	)

	BatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "budget_review_batch_duration_seconds",
			Help:    "Batch review run duration in seconds",
			Buckets: []float64{1, 10, 30, 60, 120, 300, 600},
		},
		[]string{"platform"},
	)

	GlobalUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "budget_review_global_updates_total",
			Help: "Total number of global updates (balance, campaign health) by outcome",
		},
		[]string{"platform", "step", "outcome"},
	)

	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "budget_review_aggregation_duration_seconds",
			Help:    "Account view aggregation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	AggregationErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "budget_review_aggregation_errors_total",
			Help: "Total number of failed account view aggregations",
		},
	)
)

type Metrics struct {
	enabled bool
}

func New(enabled bool) *Metrics {
	return &Metrics{
		enabled: enabled,
	}
}

func (m *Metrics) isEnabled() bool {
	return m != nil && m.enabled
}

func outcome(success bool) string {
	if success {
		return OutcomeSuccess
	}
	return OutcomeError
}

func (m *Metrics) RecordReview(platform string, success bool, duration time.Duration) {
	if !m.isEnabled() {
		return
	}

	ReviewsTotal.WithLabelValues(platform, outcome(success)).Inc()
	ReviewDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (m *Metrics) RecordBatch(platform string, successCount, errorCount int, duration time.Duration) {
	if !m.isEnabled() {
		return
	}

	BatchRunsTotal.WithLabelValues(platform).Inc()
	BatchClientsTotal.WithLabelValues(platform, OutcomeSuccess).Add(float64(successCount))
	BatchClientsTotal.WithLabelValues(platform, OutcomeError).Add(float64(errorCount))
	BatchDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

func (m *Metrics) RecordGlobalUpdate(platform, step, result string) {
	if !m.isEnabled() {
		return
	}

	GlobalUpdatesTotal.WithLabelValues(platform, step, result).Inc()
}

func (m *Metrics) RecordAggregation(duration time.Duration, err error) {
	if !m.isEnabled() {
		return
	}

	AggregationDuration.Observe(duration.Seconds())
	if err != nil {
		AggregationErrorsTotal.Inc()
	}
}
