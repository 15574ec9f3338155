package rop

// Result is a two-slot outcome: a value on success, an error on failure.
// A failure always holds a non-nil error; a success never does.
type Result[T any] struct {
	result T
	err    error
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result: r,
	}
}

// Fail builds a failure. A nil err is normalized so the error slot is never empty.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = EnsureError(err)
	}
	return Result[T]{
		err: err,
	}
}

// New converts a Go (value, error) pair into a Result.
func New[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](EnsureError(err))
	}
	return Success(r)
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Unpack returns the tuple as a regular Go pair.
func (r Result[T]) Unpack() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// IsCancel reports a failure caused by context cancellation or deadline.
func (r Result[T]) IsCancel() bool {
	return r.err != nil && IsCancellationError(r.err)
}

func (r Result[T]) OrElse(def T) T {
	if r.IsFailure() {
		return def
	}
	return r.result
}
