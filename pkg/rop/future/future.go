// Package future provides a Future, an operation that is already running and
// can be awaited by any number of goroutines. A Future satisfies
// rop.Awaitable, so rop.TryPromise turns its outcome into a Result.
package future

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/ib-77/trytuple/pkg/rop"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// Func is the function signature required to create a Future via FromFunc
type Func[T any] func() (T, error)

// Future is an asynchronous computation that completes exactly once. The
// first of Complete, Fail or Cancel wins; later calls are ignored.
//
// Get blocks until the future completes or the context is done. Every
// caller of Get observes the same value and error.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates a Future that must be completed by calling Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc starts do on a new goroutine and returns a Future of its outcome.
// A panic in do fails the future with the normalized panic value.
func FromFunc[T any](do Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		res := rop.TryCatch[T](do)
		if res.IsFailure() {
			f.Fail(res.Err())
			return
		}
		f.Complete(res.Result())
	}()

	return f
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Cancel completes this Future with the ErrCanceled error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail completes this Future with err, normalized so a failed future never
// reports a nil error.
func (f *Future[T]) Fail(err error) {
	f.internalComplete(*new(T), rop.Fail[T](err).Err())
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done is closed once the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future. If the future is not yet completed
// this call blocks until it is or until ctx is done, in which case the
// context error is returned.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
