package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records quote engine activity. A nil registerer yields a
// no-op collector so call sites never nil-check.
type QuoteMetrics struct {
	duration   *prometheus.HistogramVec
	items      *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_duration_seconds",
		Help:    "Duration of quote operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_items_total",
		Help: "Line items processed, partitioned by validation outcome.",
	}, []string{"outcome"})
	rejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_rejections_total",
		Help: "Rejected line items by reason code.",
	}, []string{"reason"})
	reg.MustRegister(duration, items, rejections)
	return &QuoteMetrics{
		duration:   duration,
		items:      items,
		rejections: rejections,
	}
}

// ObserveDuration records the duration for the named operation.
func (q *QuoteMetrics) ObserveDuration(operation string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// AddValidItems counts items that passed validation.
func (q *QuoteMetrics) AddValidItems(count int) {
	if q == nil || q.items == nil || count <= 0 {
		return
	}
	q.items.WithLabelValues("valid").Add(float64(count))
}

// AddInvalidItems counts items that were rejected.
func (q *QuoteMetrics) AddInvalidItems(count int) {
	if q == nil || q.items == nil || count <= 0 {
		return
	}
	q.items.WithLabelValues("invalid").Add(float64(count))
}

// IncRejection counts one rejection reason occurrence.
func (q *QuoteMetrics) IncRejection(reason string) {
	if q == nil || q.rejections == nil {
		return
	}
	q.rejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
