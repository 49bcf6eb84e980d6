// Package metrics provides Prometheus metrics for clipdeck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ReportsTotal counts report requests by route and outcome.
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "clipdeck",
			Name:      "reports_total",
			Help:      "Total number of report requests",
		},
		[]string{"route", "status"},
	)

	// ReportDuration measures report generation time.
	ReportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "clipdeck",
			Name:      "report_duration_seconds",
			Help:      "Duration of report generation in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// ReportSlides observes the number of slides per generated deck.
	ReportSlides = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "clipdeck",
			Name:      "report_slides",
			Help:      "Distribution of slides per generated deck",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// Outcome labels of ReportsTotal.
const (
	StatusOK          = "ok"
	StatusBadRequest  = "bad_request"
	StatusServerError = "error"
)

// RecordReport records a successful report.
func RecordReport(route string, slides int, duration float64) {
	ReportsTotal.WithLabelValues(route, StatusOK).Inc()
	ReportDuration.WithLabelValues(route).Observe(duration)
	ReportSlides.Observe(float64(slides))
}

// RecordFailure records a rejected or failed report request.
func RecordFailure(route, status string, duration float64) {
	ReportsTotal.WithLabelValues(route, status).Inc()
	ReportDuration.WithLabelValues(route).Observe(duration)
}
