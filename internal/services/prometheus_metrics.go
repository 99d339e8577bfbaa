package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transfersTotal   *prometheus.CounterVec
	transferDuration *prometheus.HistogramVec
	transferAmount   prometheus.Histogram
	pinAttemptsTotal *prometheus.CounterVec
	accountBalance   *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ledger metrics with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith registers the ledger metrics with reg
func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers by outcome",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer confirmation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"status"},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount_gbp",
				Help:    "Amount of completed transfers in GBP",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		pinAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pin_attempts_total",
				Help: "Total number of transfer PIN attempts by result",
			},
			[]string{"result"},
		),
		accountBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "account_balance_gbp",
				Help: "Current balance of each account in GBP",
			},
			[]string{"account"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transfers_total":
		if status := tags["status"]; status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case "pin_attempt":
		if result := tags["result"]; result != "" {
			m.pinAttemptsTotal.WithLabelValues(result).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transfer_duration_success":
		m.transferDuration.WithLabelValues("success").Observe(float64(duration.Milliseconds()))
	case "transfer_duration_failed":
		m.transferDuration.WithLabelValues("failed").Observe(float64(duration.Milliseconds()))
	case "transfer_duration_rejected":
		m.transferDuration.WithLabelValues("rejected").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "transfer_amount":
		m.transferAmount.Observe(value)
	case "account_balance":
		if account := tags["account"]; account != "" {
			m.accountBalance.WithLabelValues(account).Set(value)
		}
	}
}
