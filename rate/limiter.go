package rate

import "context"

// Limiter controls request rates to the GoldRush API.
//
// The Limiter interface provides rate limiting functionality to prevent
// exceeding the API's request-per-second limits. Implementations can use
// different strategies such as:
//   - Token bucket algorithm
//   - Fixed window counting
//   - Sliding window counting
//   - Leaky bucket algorithm
//
// Wait is called before each request attempt (including retries) and
// should block until the request may proceed or the context is done.
// This helps maintain good API citizenship and avoids 429 responses
// in the first place.
type Limiter interface {
	// Wait blocks until a request may proceed. It returns a non-nil
	// error only when the context is canceled or its deadline passes
	// before a slot becomes available.
	Wait(ctx context.Context) error
}
