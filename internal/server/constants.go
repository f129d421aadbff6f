package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAPIKeyDisabled   = "API key check disabled, all callers are trusted"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-Id"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Public path prefixes that bypass the API key check and request logging
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// quietPaths are polled by infrastructure and would flood the request log
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Request limits
const (
	// MaxRequestBodyBytes caps request bodies; every marketplace payload is a few small fields
	MaxRequestBodyBytes = 64 << 10

	// RateLimitRequests is the number of requests one client may make per RateLimitWindow
	RateLimitRequests = 1000

	// RateLimitWindow is the sliding reset period of the activity detector
	RateLimitWindow = 5 * time.Minute

	// FailedAuthAlertThreshold is the failed API key count that triggers a security alert
	FailedAuthAlertThreshold = 5

	// highRateLogEvery throttles the high-rate alert
	highRateLogEvery = 100
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	ReadTimeout       = 15 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 60 * time.Second
)

// CORS policy
const (
	CORSMaxAgeSeconds = 300
)

var (
	corsAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsAllowedHeaders = []string{"Accept", "Content-Type", "X-User-Id", "X-API-Key", "X-Requested-With"}
	corsExposedHeaders = []string{"X-Request-Id"}
)
