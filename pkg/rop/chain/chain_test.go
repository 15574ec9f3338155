package chain

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/trytuple/pkg/rop"
)

var (
	double Step[int, int] = func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	}
	plusOne Step[int, int] = func(ctx context.Context, n int) (int, error) {
		return n + 1, nil
	}
	toString Step[int, string] = func(ctx context.Context, n int) (string, error) {
		return strconv.Itoa(n), nil
	}
)

func TestPipe3_Success(t *testing.T) {
	t.Parallel()

	p := Pipe3(double, plusOne, toString)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, rop.Success("11"), p.Run(context.Background(), 5))
}

func TestRun_ShortCircuit(t *testing.T) {
	t.Parallel()

	var guard Step[int, int] = func(ctx context.Context, n int) (int, error) {
		if n > 10 {
			return 0, errors.New("too big")
		}
		return n + 1, nil
	}

	calls := 0
	var counted Step[int, string] = func(ctx context.Context, n int) (string, error) {
		calls++
		return strconv.Itoa(n), nil
	}

	p := Pipe3(double, guard, counted)

	r := p.Run(context.Background(), 10)
	require.True(t, r.IsFailure())
	assert.EqualError(t, r.Err(), "too big")
	assert.Empty(t, r.Result())
	assert.Equal(t, 0, calls)

	r = p.Run(context.Background(), 2)
	assert.Equal(t, rop.Success("5"), r)
	assert.Equal(t, 1, calls)
}

func TestRun_PanicStops(t *testing.T) {
	t.Parallel()

	reached := false
	var explode Step[int, int] = func(ctx context.Context, n int) (int, error) {
		panic(struct {
			Code int `json:"code"`
		}{Code: n})
	}

	var mark Step[int, int] = func(ctx context.Context, n int) (int, error) {
		reached = true
		return n, nil
	}

	p := Then(Then(Start(double), explode), mark)

	r := p.Run(context.Background(), 4)
	assert.EqualError(t, r.Err(), `{"code":8}`)
	assert.False(t, reached)
}

func TestRun_ContextCanceledBetweenSteps(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reached := false
	var stop Step[int, int] = func(ctx context.Context, n int) (int, error) {
		cancel()
		return n, nil
	}
	var after Step[int, int] = func(ctx context.Context, n int) (int, error) {
		reached = true
		return n, nil
	}

	r := Pipe(double, stop, after).Run(ctx, 1)
	assert.True(t, r.IsCancel())
	assert.False(t, reached)
}

func TestRun_EmptyPipeline(t *testing.T) {
	t.Parallel()

	var p Pipeline[int, int]
	assert.Equal(t, 0, p.Len())
	assert.ErrorIs(t, p.Run(context.Background(), 1).Err(), ErrEmptyPipeline)
}

func TestThen_DoesNotMutateBase(t *testing.T) {
	t.Parallel()

	base := Start(double)
	a := Then(base, plusOne)
	b := Then(base, double)

	ctx := context.Background()
	assert.Equal(t, rop.Success(6), base.Run(ctx, 3))
	assert.Equal(t, rop.Success(7), a.Run(ctx, 3))
	assert.Equal(t, rop.Success(12), b.Run(ctx, 3))
}

func TestMapAndTee(t *testing.T) {
	t.Parallel()

	var seen []int
	p := Map(Tee(Start(double), func(ctx context.Context, n int) {
		seen = append(seen, n)
	}), func(ctx context.Context, n int) string {
		return "n=" + strconv.Itoa(n)
	})

	assert.Equal(t, rop.Success("n=8"), p.Run(context.Background(), 4))
	assert.Equal(t, []int{8}, seen)
}

func TestPipe4_StructInput(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	var sum Step[pair, int] = func(ctx context.Context, in pair) (int, error) {
		return in.A + in.B, nil
	}

	p := Pipe4(sum, double, plusOne, toString)
	assert.Equal(t, rop.Success("11"), p.Run(context.Background(), pair{A: 2, B: 3}))
}

func TestGo_MatchesRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := Pipe3(double, plusOne, toString)
	assert.Equal(t, p.Run(ctx, 5), rop.TryPromise[string](ctx, p.Go(ctx, 5)))

	var fail Step[int, int] = func(ctx context.Context, n int) (int, error) {
		return 0, errors.New("nope")
	}
	f := Then(Start(fail), toString)
	r := rop.TryPromise[string](ctx, f.Go(ctx, 1))
	assert.EqualError(t, r.Err(), "nope")
}

func TestRunID(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var ids []uuid.UUID
	var record Step[int, int] = func(ctx context.Context, n int) (int, error) {
		id, ok := RunIDFromContext(ctx)
		require.True(t, ok)
		mu.Lock()
		ids = append(ids, id)
		mu.Unlock()
		return n, nil
	}

	p := Pipe(record, record)
	ctx := context.Background()
	p.Run(ctx, 1)
	p.Run(ctx, 1)

	require.Len(t, ids, 4)
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[2], ids[3])
	assert.NotEqual(t, ids[0], ids[2])

	_, ok := RunIDFromContext(ctx)
	assert.False(t, ok)
}

func TestStep_Nested(t *testing.T) {
	t.Parallel()

	var outer, inner uuid.UUID
	var capture = func(dst *uuid.UUID) Step[int, int] {
		return func(ctx context.Context, n int) (int, error) {
			*dst, _ = RunIDFromContext(ctx)
			return n, nil
		}
	}

	nested := Pipe(capture(&inner), plusOne)
	p := Pipe3(capture(&outer), nested.Step(), toString)

	assert.Equal(t, rop.Success("3"), p.Run(context.Background(), 2))
	assert.Equal(t, outer, inner)
}
