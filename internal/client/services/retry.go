// Package services contains the application services of the OnCall client:
// thin orchestration over the api modules plus the caller-side retry policy.
// Retrying belongs here, not in the HTTP core: the core performs exactly one
// request per call and screens decide whether a fetch is worth repeating.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/oncall-app/oncall-cli/internal/common"
)

// fetchWithRetry runs a read-only fetch up to attempts+1 times with a constant
// delay between tries. Mutations must not go through here. A 401 is terminal:
// the session is already gone, repeating the request cannot help.
func fetchWithRetry[T any](ctx context.Context, attempts uint64, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T

	b := retry.WithMaxRetries(attempts, retry.NewConstant(delay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				return err
			}
			return retry.RetryableError(err)
		}
		out = v
		return nil
	})
	return out, err
}
