package remote

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limited spaces calls to the wrapped analyzer.
type Limited struct {
	next    Analyzer
	limiter *rate.Limiter
}

// NewLimited allows rpm calls per minute with a burst of one. A non-positive
// rpm returns next unchanged.
func NewLimited(next Analyzer, rpm int) Analyzer {
	if rpm <= 0 {
		return next
	}
	return &Limited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

// Analyze waits for a token, failing fast when the context deadline would be
// exceeded, then delegates.
func (l *Limited) Analyze(ctx context.Context, doc []byte) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return l.next.Analyze(ctx, doc)
}
