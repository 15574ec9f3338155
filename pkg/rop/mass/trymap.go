package mass

import (
	"context"
	"errors"

	"github.com/mudler/xlog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/ib-77/trytuple/pkg/rop"
	"github.com/ib-77/trytuple/pkg/rop/core"
)

// ItemFunc processes one item. idx is the item's position in the input.
type ItemFunc[In, Out any] func(ctx context.Context, item In, idx int) (Out, error)

// TryMap applies fn to every item and returns one Result per item, in input
// order. A failing or panicking item only affects its own Result. TryMap
// waits for every item and never fails as a whole.
func TryMap[In, Out any](ctx context.Context, items []In, fn ItemFunc[In, Out]) []rop.Result[Out] {
	return TryMapOpts(ctx, Opts{}, items, fn)
}

// TryMapOpts is TryMap with explicit concurrency and rate limits. It panics
// if opts is invalid.
func TryMapOpts[In, Out any](ctx context.Context, opts Opts, items []In, fn ItemFunc[In, Out]) []rop.Result[Out] {
	opts.validate()

	results := make([]rop.Result[Out], len(items))
	if len(items) == 0 {
		return results
	}

	workers := opts.MaxWorkers
	if workers == 0 {
		workers = core.GetWorkerMaxCount(ctx, core.Unlimited)
	}
	if workers < 1 {
		workers = core.Unlimited
	}

	var limiter *rate.Limiter
	if opts.Limit > 0 {
		limiter = rate.NewLimiter(opts.Limit, opts.Burst)
	}

	// a plain group: one item failing must not cancel the others
	g := &errgroup.Group{}
	g.SetLimit(workers)

	for i, item := range items {
		g.Go(func() error {
			results[i] = tryItem(ctx, limiter, fn, item, i)
			return nil
		})
	}
	// items report through results; the group error is always nil
	_ = g.Wait()

	if failed := countFailed(results); failed > 0 {
		xlog.Debug("try map finished with failed items", "items", len(items), "failed", failed, "workers", workers)
	}

	return results
}

func tryItem[In, Out any](ctx context.Context, limiter *rate.Limiter, fn ItemFunc[In, Out], item In, idx int) rop.Result[Out] {
	if err := ctx.Err(); err != nil {
		return rop.Fail[Out](err)
	}

	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return rop.Fail[Out](err)
		}
	}

	return rop.TryCatch(func() (Out, error) {
		return fn(ctx, item, idx)
	})
}

func countFailed[T any](results []rop.Result[T]) int {
	n := 0
	for _, r := range results {
		if r.IsFailure() {
			n++
		}
	}
	return n
}

// Partition splits results into the successful values, in order, and the
// failures joined into one error (nil when every item succeeded).
func Partition[T any](results []rop.Result[T]) ([]T, error) {
	values := make([]T, 0, len(results))
	var errs []error

	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Err())
			continue
		}
		values = append(values, r.Result())
	}

	return values, errors.Join(errs...)
}
