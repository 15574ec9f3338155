package mass

import (
	"time"

	"golang.org/x/time/rate"
)

// Limit is a rate expressed as items started per second.
type Limit = rate.Limit

// Every converts the provided duration into a number of items per second
// for instance Every(100 * time.Millisecond) will yield 10 items per second
func Every(interval time.Duration) Limit {
	return rate.Every(interval)
}

// Opts configures TryMapOpts.
type Opts struct {
	// MaxWorkers bounds how many items run at once. Zero defers to the
	// worker options carried by the context, which default to no bound.
	// One runs the items strictly in order.
	MaxWorkers int
	// Limit is the rate at which items may start. Zero disables rate limiting.
	Limit Limit
	// Burst is the size of the token bucket. Required when Limit is set.
	Burst int
}

func (o Opts) validate() {
	if o.MaxWorkers < 0 {
		panic("try map max workers must be 0 or greater")
	}

	if o.Limit < 0 {
		panic("try map rate limit must be 0 or greater")
	}

	if o.Limit > 0 && o.Burst < 1 {
		panic("try map burst must be 1 or greater when a rate limit is set")
	}
}
