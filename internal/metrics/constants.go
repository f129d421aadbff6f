package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameListingsCreated   = "market_listings_created_total"
	MetricNameListingsCancelled = "market_listings_cancelled_total"
	MetricNamePurchases         = "market_purchases_total"
	MetricNamePurchaseVolume    = "market_purchase_volume_total"
	MetricNameItemsGranted      = "inventory_items_granted_total"
	MetricNameBalanceOverwrites = "balance_overwrites_total"
	MetricNameOwnershipConflict = "market_ownership_conflicts_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextListingsCreated   = "Total number of market listings created"
	HelpTextListingsCancelled = "Total number of market listings cancelled by their seller"
	HelpTextPurchases         = "Total number of buy attempts by outcome"
	HelpTextPurchaseVolume    = "Total currency moved from buyers to sellers"
	HelpTextItemsGranted      = "Total number of items added to inventories"
	HelpTextBalanceOverwrites = "Total number of client balance overwrites"
	HelpTextOwnershipConflict = "Listings found pointing at an item the seller no longer owns"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Purchase outcomes
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeSelfTrade         = "self_trade"
	OutcomeInsufficientFunds = "insufficient_funds"
	OutcomeConflict          = "conflict"
	OutcomeError             = "error"
)

// PathUnmatched labels requests that did not hit a registered route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
