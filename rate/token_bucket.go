package rate

import (
	"context"

	xrate "golang.org/x/time/rate"
)

// tokenBucket adapts golang.org/x/time/rate to the Limiter interface.
type tokenBucket struct {
	limiter *xrate.Limiter
}

var _ Limiter = &tokenBucket{}

// NewTokenBucket returns a Limiter allowing requestsPerSecond sustained
// throughput with the given burst capacity.
func NewTokenBucket(requestsPerSecond float64, burst int) Limiter {
	return &tokenBucket{
		limiter: xrate.NewLimiter(xrate.Limit(requestsPerSecond), burst),
	}
}

func (t *tokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
