package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"dispatch/pkg/retrier"
)

type Retrier struct {
	config   retrier.Config
	constant bool
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

// NewConstant builds a retrier that waits the same interval before
// every attempt instead of growing it exponentially.
func NewConstant(interval time.Duration, maxRetries uint64, shouldRetry retrier.ShouldRetryFunc) *Retrier {
	return &Retrier{
		config: retrier.Config{
			InitialInterval: interval,
			MaxRetries:      maxRetries,
			ShouldRetry:     shouldRetry,
		},
		constant: true,
	}
}

func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	var b backoff.BackOff
	if r.constant {
		b = backoff.NewConstantBackOff(r.config.InitialInterval)
	} else {
		b = backoff.NewExponentialBackOff(
			backoff.WithInitialInterval(r.config.InitialInterval),
			backoff.WithMaxInterval(r.config.MaxInterval),
			backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
			backoff.WithRandomizationFactor(r.config.Randomization),
			backoff.WithMultiplier(r.config.Multiplier),
		)
	}

	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}
