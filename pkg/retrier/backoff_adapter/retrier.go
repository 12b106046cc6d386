package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"tracker/pkg/retrier"
)

type Retrier struct {
	policy retrier.Policy
}

func New(policy retrier.Policy) *Retrier {
	return &Retrier{policy: policy}
}

func (r *Retrier) Do(ctx context.Context, op func(context.Context) error) error {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.policy.Initial),
		backoff.WithMaxInterval(r.policy.Max),
		backoff.WithMaxElapsedTime(r.policy.MaxElapsed),
		backoff.WithRandomizationFactor(r.policy.Jitter),
		backoff.WithMultiplier(r.policy.Multiplier),
	)
	if r.policy.MaxAttempts > 0 {
		b = backoff.WithMaxRetries(b, r.policy.MaxAttempts-1)
	}

	var attempt uint64
	operation := func() error {
		attempt++
		err := op(ctx)
		if err != nil && r.policy.Retryable != nil && !r.policy.Retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	var notify backoff.Notify
	if r.policy.OnRetry != nil {
		notify = func(err error, wait time.Duration) {
			r.policy.OnRetry(attempt, err, wait)
		}
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
