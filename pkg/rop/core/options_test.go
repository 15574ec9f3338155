package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWorkerMaxCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))

	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5))
	assert.Equal(t, Unlimited, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5))
	assert.Equal(t, Unlimited, GetWorkerMaxCount(WithWorkerOptions(ctx, -3), 5))
}

func TestWithWorkerOptions_Innermost(t *testing.T) {
	t.Parallel()

	ctx := WithWorkerOptions(context.Background(), 4)
	inner := WithWorkerOptions(ctx, 1)

	assert.Equal(t, 4, GetWorkerMaxCount(ctx, Unlimited))
	assert.Equal(t, 1, GetWorkerMaxCount(inner, Unlimited))
}

func TestGetWorkerMaxCount_RawZeroValue(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), WorkerOptionKey, WorkerOptions{})
	assert.Equal(t, Unlimited, GetWorkerMaxCount(ctx, 5))

	ctx = context.WithValue(context.Background(), WorkerOptionKey, WorkerOptions{MaxCount: MaxLimitOption{Value: -7}})
	assert.Equal(t, Unlimited, GetWorkerMaxCount(ctx, 5))
}
