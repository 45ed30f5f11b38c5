package impl

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// itemResult pairs the value produced for one batch item with its error.
type itemResult[R any] struct {
	Value R
	Err   error
}

// processSequentially runs fn for each item in order, one at a time, waiting
// delay between items. An error or panic in one item is recorded in its slot
// and the loop moves on. Results are in input order.
func processSequentially[T, R any](
	ctx context.Context,
	items []T,
	delay time.Duration,
	fn func(ctx context.Context, item T) (R, error),
) []itemResult[R] {
	results := make([]itemResult[R], len(items))

	for i, item := range items {
		if i > 0 && delay > 0 {
			wait(ctx, delay)
		}
		results[i] = runItem(ctx, item, fn)
	}

	return results
}

func runItem[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res itemResult[R]) {
	defer func() {
		if p := recover(); p != nil {
			res.Err = errors.Errorf("panic: %v", p)
		}
	}()

	res.Value, res.Err = fn(ctx, item)

	return res
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
