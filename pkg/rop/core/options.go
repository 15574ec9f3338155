package core

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
)

// Unlimited is the worker count meaning no bound on concurrency.
const Unlimited = -1

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

// WithWorkerOptions bounds how many items concurrent combinators process at
// once for calls made with the returned context. Values below 1 mean Unlimited.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	if maxWorkers < 1 {
		maxWorkers = Unlimited
	}
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// GetWorkerMaxCount returns the worker limit carried by ctx, or
// defaultMaxWorkers when there is none. Values below 1 read as Unlimited.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		if options.MaxCount.Value < 1 {
			return Unlimited
		}
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}
