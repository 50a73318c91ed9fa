package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// MaxRetries bounds the attempt count when > 0; otherwise only
	// MaxElapsedTime limits retrying.
	MaxRetries uint64

	// If nil every error is retried, otherwise only errors for which the
	// function returns true.
	ShouldRetry ShouldRetryFunc
}
