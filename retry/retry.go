package retry

import (
	"context"
	"time"
)

// Operation is a fallible computation producing a value of type T.
type Operation[T any] func(ctx context.Context) (T, error)

// sleeper waits for the given duration or until the context is done.
// The production sleeper suspends cooperatively; tests substitute a
// recorder to assert the backoff schedule without real sleeping.
type sleeper func(ctx context.Context, d time.Duration) error

// Do executes op under the given policy and returns its result.
//
// With context.Background() the call blocks the calling goroutine only;
// with a cancellable context, cancellation during the network wait or the
// backoff sleep aborts the loop and returns the context's error without a
// further attempt.
func Do[T any](ctx context.Context, p Policy, op Operation[T]) (T, error) {
	return do(ctx, p, op, sleepContext)
}

// Run is the error-only form of Do.
func Run(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	_, err := Do(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Wrap binds a policy to an operation, producing an operation with
// identical success-path semantics and retrying failure-path semantics.
func Wrap[T any](p Policy, op Operation[T]) Operation[T] {
	return func(ctx context.Context) (T, error) {
		return Do(ctx, p, op)
	}
}

func do[T any](ctx context.Context, p Policy, op Operation[T], sleep sleeper) (T, error) {
	var zero T
	if err := p.Validate(); err != nil {
		return zero, err
	}

	retryIf := p.RetryIf
	if retryIf == nil {
		retryIf = IsTransient
	}

	delay := p.InitialDelay
	for attempt := 1; ; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		if !retryIf(err) {
			return zero, err
		}
		if attempt >= p.MaxRetries {
			// Exhausted: surface the final failure unchanged.
			return zero, err
		}
		if sleepErr := sleep(ctx, delay); sleepErr != nil {
			return zero, sleepErr
		}
		delay = time.Duration(float64(delay) * p.BackoffMultiplier)
	}
}

// sleepContext waits for d or until ctx is cancelled, whichever comes
// first. A zero duration still observes pending cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
