package pg

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/domain"
)

// DefaultBackoff gives an operation four attempts in total.
func DefaultBackoff() retry.Backoff {
	return retry.WithMaxRetries(3, retry.NewExponential(50*time.Millisecond))
}

// RetryTransient reruns fn while it fails with domain.ErrStoreUnavailable.
// fn must be a whole transaction: retrying a statement inside an already
// failed transaction cannot succeed.
func RetryTransient[T any](ctx context.Context, b retry.Backoff, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	return retry.DoValue(ctx, b, func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		if errors.Is(err, domain.ErrStoreUnavailable) {
			zap.L().Warn("transient store failure, retrying", zap.String("op", op), zap.Error(err))
			return v, retry.RetryableError(err)
		}
		return v, err
	})
}
