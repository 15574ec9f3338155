package rop

import (
	"context"

	"github.com/pkg/errors"
)

// TryCatch runs fn and captures its outcome. A returned error or a panic
// becomes a failure holding the normalized cause.
func TryCatch[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[T](EnsureError(r))
		}
	}()

	v, err := fn()
	return New(v, err)
}

// TryValue is TryCatch for computations that only fail by panicking.
func TryValue[T any](fn func() T) Result[T] {
	return TryCatch(func() (T, error) {
		return fn(), nil
	})
}

// TryPromise waits for an operation that is already running and captures
// how it settled. Only the calling goroutine waits.
func TryPromise[T any](ctx context.Context, op Awaitable[T]) Result[T] {
	if IsNil(op) {
		return Fail[T](errors.WithStack(ErrNilOperation))
	}

	return TryCatch(func() (T, error) {
		return op.Get(ctx)
	})
}

func TryFn0[T any](fn func(ctx context.Context) (T, error)) func(ctx context.Context) Result[T] {
	return func(ctx context.Context) Result[T] {
		return TryCatch(func() (T, error) {
			return fn(ctx)
		})
	}
}

// TryFn wraps fn so that calling it always yields a Result and never panics.
func TryFn[A, T any](fn func(ctx context.Context, a A) (T, error)) func(ctx context.Context, a A) Result[T] {
	return func(ctx context.Context, a A) Result[T] {
		return TryCatch(func() (T, error) {
			return fn(ctx, a)
		})
	}
}

func TryFn2[A, B, T any](fn func(ctx context.Context, a A, b B) (T, error)) func(ctx context.Context, a A, b B) Result[T] {
	return func(ctx context.Context, a A, b B) Result[T] {
		return TryCatch(func() (T, error) {
			return fn(ctx, a, b)
		})
	}
}

func TryFnVariadic[A, T any](fn func(ctx context.Context, args ...A) (T, error)) func(ctx context.Context, args ...A) Result[T] {
	return func(ctx context.Context, args ...A) Result[T] {
		return TryCatch(func() (T, error) {
			return fn(ctx, args...)
		})
	}
}

// TryFnAwait wraps a callable that starts an asynchronous operation. The
// wrapper starts it and waits for it to settle.
func TryFnAwait[A, T any](fn func(ctx context.Context, a A) Awaitable[T]) func(ctx context.Context, a A) Result[T] {
	return func(ctx context.Context, a A) Result[T] {
		op := TryValue(func() Awaitable[T] {
			return fn(ctx, a)
		})
		if op.IsFailure() {
			return Fail[T](op.Err())
		}
		return TryPromise(ctx, op.Result())
	}
}
