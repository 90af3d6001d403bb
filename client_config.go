package goldrush_go

import (
	"net/http"
	"time"

	"github.com/goldrush-dev/goldrush-go/logger"
	"github.com/goldrush-dev/goldrush-go/metrics"
	"github.com/goldrush-dev/goldrush-go/rate"
	"github.com/goldrush-dev/goldrush-go/retry"
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for a single HTTP request
	// before it is cancelled. The retry budget sits on top of this,
	// so a fully exhausted request can take (maxRetries+1) * timeout
	// plus backoff.
	// default: 30 seconds
	timeout time.Duration

	// baseUrl is the API origin. Override it to target a proxy or a
	// staging deployment.
	// default: https://api.goldrush.dev
	baseUrl string

	// userAgent identifies this client in the User-Agent header.
	// default: goldrush-go/<Version>
	userAgent string

	// maxRetries caps how many times a failed request is retried.
	// Total sends are maxRetries+1. Only transient failures
	// (network, 429, 5xx) are retried.
	// default: 3
	maxRetries int

	// retry is the strategy that drives the attempt loop.
	// default: exponential backoff starting at 200ms, doubling
	retry retry.Retry

	// initialBackoff seeds the default exponential strategy. Ignored
	// when a custom retry is supplied.
	// default: 200 milliseconds
	initialBackoff time.Duration

	// limiter throttles outgoing requests before they are sent.
	// default: rate.NoopLimiter (no throttling)
	limiter rate.Limiter

	// logger provides logging functionality for all internal
	// goldrush-go client operations
	// default: logger.Noop
	logger logger.Logger

	// metrics observes every attempt, retry and terminal error.
	// default: metrics.Noop
	metrics metrics.Collector
}

func defaultConfig() *config {
	return &config{
		transport:      http.DefaultTransport,
		timeout:        30 * time.Second,
		userAgent:      "goldrush-go/" + Version,
		maxRetries:     3,
		initialBackoff: 200 * time.Millisecond,
		limiter:        rate.NoopLimiter{},
		logger:         logger.Noop{},
		metrics:        metrics.Noop{},
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

func WithUserAgent(userAgent string) ConfigOption {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

func WithMaxRetries(maxRetries int) ConfigOption {
	return func(c *config) {
		c.maxRetries = maxRetries
	}
}

func WithInitialBackoff(initialBackoff time.Duration) ConfigOption {
	return func(c *config) {
		c.initialBackoff = initialBackoff
	}
}

func WithRetry(retry retry.Retry) ConfigOption {
	return func(c *config) {
		c.retry = retry
	}
}

func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

func WithMetrics(metrics metrics.Collector) ConfigOption {
	return func(c *config) {
		c.metrics = metrics
	}
}
