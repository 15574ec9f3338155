package chain

import (
	"context"

	"github.com/google/uuid"
)

type runIDKey struct{}

func withRunID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the id of the pipeline run the context belongs to.
// Every Run tags the context handed to its steps, which is useful for logging.
func RunIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	v, ok := ctx.Value(runIDKey{}).(uuid.UUID)
	return v, ok
}
