package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/mudler/xlog"
	"github.com/pkg/errors"

	"github.com/ib-77/trytuple/pkg/rop"
	"github.com/ib-77/trytuple/pkg/rop/future"
)

// ErrEmptyPipeline is reported when a zero Pipeline is run.
var ErrEmptyPipeline = errors.New("pipeline has no steps")

// Step is one stage of a pipeline.
type Step[In, Out any] func(ctx context.Context, in In) (Out, error)

type link func(ctx context.Context, in any) (any, error)

// Pipeline is an immutable sequence of steps taking In and producing Out.
// Appending a step returns a new Pipeline and leaves the receiver untouched.
type Pipeline[In, Out any] struct {
	links []link
}

func erase[In, Out any](step Step[In, Out]) link {
	return func(ctx context.Context, v any) (any, error) {
		in, _ := v.(In)
		return step(ctx, in)
	}
}

// Start creates a pipeline from its first step.
func Start[In, Out any](step Step[In, Out]) Pipeline[In, Out] {
	return Pipeline[In, Out]{links: []link{erase(step)}}
}

// Then appends step, which receives the output of p.
func Then[In, Mid, Out any](p Pipeline[In, Mid], step Step[Mid, Out]) Pipeline[In, Out] {
	links := make([]link, len(p.links), len(p.links)+1)
	copy(links, p.links)
	return Pipeline[In, Out]{links: append(links, erase(step))}
}

// Map appends a transformation that cannot fail.
func Map[In, Mid, Out any](p Pipeline[In, Mid], onSuccess func(ctx context.Context, m Mid) Out) Pipeline[In, Out] {
	return Then[In, Mid, Out](p, func(ctx context.Context, m Mid) (Out, error) {
		return onSuccess(ctx, m), nil
	})
}

// Tee appends a side effect that sees the current value and passes it on.
func Tee[In, Out any](p Pipeline[In, Out], onSuccess func(ctx context.Context, o Out)) Pipeline[In, Out] {
	return Then[In, Out, Out](p, func(ctx context.Context, o Out) (Out, error) {
		onSuccess(ctx, o)
		return o, nil
	})
}

// Pipe chains same-typed steps. At least one step is required.
func Pipe[T any](first Step[T, T], rest ...Step[T, T]) Pipeline[T, T] {
	p := Start(first)
	for _, s := range rest {
		p = Then(p, s)
	}
	return p
}

func Pipe2[A, B, C any](s1 Step[A, B], s2 Step[B, C]) Pipeline[A, C] {
	return Then(Start(s1), s2)
}

func Pipe3[A, B, C, D any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D]) Pipeline[A, D] {
	return Then(Pipe2(s1, s2), s3)
}

func Pipe4[A, B, C, D, E any](s1 Step[A, B], s2 Step[B, C], s3 Step[C, D], s4 Step[D, E]) Pipeline[A, E] {
	return Then(Pipe3(s1, s2, s3), s4)
}

// Len returns the number of steps.
func (p Pipeline[In, Out]) Len() int {
	return len(p.links)
}

// Run executes the steps in order. The first failing step, or a done
// context before a step, ends the run with a failure carrying that error.
func (p Pipeline[In, Out]) Run(ctx context.Context, in In) rop.Result[Out] {
	if len(p.links) == 0 {
		return rop.Fail[Out](errors.WithStack(ErrEmptyPipeline))
	}

	runID, ok := RunIDFromContext(ctx)
	if !ok {
		runID = uuid.New()
		ctx = withRunID(ctx, runID)
	}

	var cur any = in
	for i, l := range p.links {
		if err := ctx.Err(); err != nil {
			return p.shortCircuit(runID, i, err)
		}

		next := rop.TryCatch(func() (any, error) {
			return l(ctx, cur)
		})
		if next.IsFailure() {
			return p.shortCircuit(runID, i, next.Err())
		}
		cur = next.Result()
	}

	out, _ := cur.(Out)
	return rop.Success(out)
}

func (p Pipeline[In, Out]) shortCircuit(runID uuid.UUID, step int, err error) rop.Result[Out] {
	xlog.Debug("pipeline short-circuited", "run", runID.String(), "step", step+1, "steps", len(p.links), "error", err)
	return rop.Fail[Out](err)
}

// Go starts Run on a new goroutine.
func (p Pipeline[In, Out]) Go(ctx context.Context, in In) *future.Future[Out] {
	return future.FromFunc[Out](func() (Out, error) {
		return p.Run(ctx, in).Unpack()
	})
}

// Step exposes the pipeline as a single step of another pipeline. Nested
// runs share the outer run id.
func (p Pipeline[In, Out]) Step() Step[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		return p.Run(ctx, in).Unpack()
	}
}
