package metrics

import "time"

// Collector receives request-level observations from the dispatcher.
// Implementations can forward them to Prometheus, statsd or any other
// sink; the provided InMemory collector keeps per-endpoint counters
// for quick inspection.
//
// Methods are called from concurrent requests and must be safe for
// concurrent use.
type Collector interface {
	// ObserveRequest is called once per completed HTTP exchange with
	// the response status and round-trip duration.
	ObserveRequest(endpoint string, httpStatus int, duration time.Duration)

	// ObserveRetry is called before every re-attempt of a request.
	// attempt is 1-based: the first retry reports 1.
	ObserveRetry(endpoint string, attempt int)

	// ObserveError is called when a request reaches a terminal error,
	// with the error kind from the errors package.
	ObserveError(endpoint string, kind string)
}

type Noop struct {
}

var _ Collector = &Noop{}

func (n Noop) ObserveRequest(_ string, _ int, _ time.Duration) {
}

func (n Noop) ObserveRetry(_ string, _ int) {
}

func (n Noop) ObserveError(_ string, _ string) {
}
