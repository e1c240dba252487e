package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
)

const maxStorageRetries = 3

// withStorageRetry runs op, retrying up to maxStorageRetries times with
// exponential backoff when the failure is a transient infrastructure error
// (per [store.IsTransient]). Domain errors — duplicate email, missing user —
// pass through untouched on the first attempt. When retries are exhausted
// the transient error is wrapped in [ErrStorageUnavailable].
func withStorageRetry(ctx context.Context, op func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(maxStorageRetries, retry.NewExponential(100*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		opErr := op(ctx)
		if opErr == nil {
			return nil
		}

		if store.IsTransient(opErr) {
			log.Warn().Err(opErr).Msg("transient storage failure, retrying")
			return retry.RetryableError(opErr)
		}

		return opErr
	})
	if err == nil {
		return nil
	}

	if store.IsTransient(err) {
		log.Err(err).Msg("storage retries exhausted")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}
