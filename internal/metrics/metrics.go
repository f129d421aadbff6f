package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCreated,
			Help: HelpTextListingsCreated,
		},
	)

	ListingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCancelled,
			Help: HelpTextListingsCancelled,
		},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelOutcome},
	)

	PurchaseVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseVolume,
			Help: HelpTextPurchaseVolume,
		},
	)

	ItemsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsGranted,
			Help: HelpTextItemsGranted,
		},
	)

	BalanceOverwrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBalanceOverwrites,
			Help: HelpTextBalanceOverwrites,
		},
	)

	OwnershipConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOwnershipConflict,
			Help: HelpTextOwnershipConflict,
		},
	)
)
