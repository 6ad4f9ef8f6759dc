package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	DepositsCreated    prometheus.Counter
	WithdrawalsCreated prometheus.Counter
	TransactionAmount  *prometheus.HistogramVec
	TransactionErrors  *prometheus.CounterVec

	// Account metrics
	AccountsOpened prometheus.Counter

	// Statement metrics
	StatementsGenerated prometheus.Counter
	StatementsExported  prometheus.Counter
	ExportRowsSkipped   prometheus.Counter

	// Notification metrics
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		DepositsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_deposits_created_total",
			Help: "Total number of deposits recorded",
		}),
		WithdrawalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_withdrawals_created_total",
			Help: "Total number of withdrawals recorded",
		}),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_transaction_amount",
				Help:    "Transaction amounts by type",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"type"},
		),
		TransactionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_transaction_errors_total",
				Help: "Total number of transaction errors by type",
			},
			[]string{"error_type"},
		),

		AccountsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),

		StatementsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_statements_generated_total",
			Help: "Total number of statement reports generated",
		}),
		StatementsExported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_statements_exported_total",
			Help: "Total number of statement CSV exports",
		}),
		ExportRowsSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_export_rows_skipped_total",
			Help: "Total number of export rows skipped for unknown transaction types",
		}),

		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_notifications_sent_total",
			Help: "Total number of transaction notifications sent",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_notifications_failed_total",
			Help: "Total number of transaction notifications that failed to send",
		}),

		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_http_requests_total",
				Help: "Total HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gobank_http_request_duration_seconds",
				Help:    "HTTP request duration by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gobank_auth_attempts_total",
				Help: "Total authentication attempts by result",
			},
			[]string{"result"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_cache_hits_total",
			Help: "Total statement cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gobank_cache_misses_total",
			Help: "Total statement cache misses",
		}),
	}
}
