package future

import (
	"context"

	"github.com/ib-77/trytuple/pkg/rop"
)

// ResolveAll waits for all of the provided Futures to complete and returns a rop.Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]rop.Result[T], error) {
	res := make([]rop.Result[T], 0, len(fs))

	for _, f := range fs {
		r := rop.TryPromise[T](ctx, f)
		// check for error at the end of the loop to avoid the race of cancelling while Getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		res = append(res, r)
	}

	return res, nil
}
