// Package timing records wall-clock durations of named operations.
package timing

import (
	"context"
	"sync"
	"time"
)

type contextKey struct{}

type span struct {
	operation string
	start     time.Time
}

// Tracker accumulates durations per operation name. It is safe for
// concurrent use.
type Tracker struct {
	mu      sync.RWMutex
	timings map[string][]time.Duration
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
	}
}

// Start opens a span for the named operation and returns the context
// that carries it to End.
func (t *Tracker) Start(operation string) context.Context {
	return context.WithValue(context.Background(), contextKey{}, span{
		operation: operation,
		start:     time.Now(),
	})
}

// End closes the span carried by ctx, records its duration, and returns
// it. Contexts without a span record nothing and return zero.
func (t *Tracker) End(ctx context.Context) time.Duration {
	s, ok := ctx.Value(contextKey{}).(span)
	if !ok {
		return 0
	}

	duration := time.Since(s.start)

	t.mu.Lock()
	t.timings[s.operation] = append(t.timings[s.operation], duration)
	t.mu.Unlock()

	return duration
}

// Durations returns a copy of the recorded durations for one operation.
func (t *Tracker) Durations(operation string) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	recorded := t.timings[operation]
	if recorded == nil {
		return nil
	}

	result := make([]time.Duration, len(recorded))
	copy(result, recorded)
	return result
}

// All returns a copy of every recorded duration keyed by operation.
func (t *Tracker) All() map[string][]time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make(map[string][]time.Duration, len(t.timings))
	for operation, recorded := range t.timings {
		result[operation] = make([]time.Duration, len(recorded))
		copy(result[operation], recorded)
	}
	return result
}

// Average returns the mean duration of one operation, zero when nothing
// was recorded.
func (t *Tracker) Average(operation string) time.Duration {
	recorded := t.Durations(operation)
	if len(recorded) == 0 {
		return 0
	}

	var total time.Duration
	for _, duration := range recorded {
		total += duration
	}
	return total / time.Duration(len(recorded))
}

// Reset drops the recordings of one operation, or of every operation
// when the name is empty.
func (t *Tracker) Reset(operation string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if operation == "" {
		t.timings = make(map[string][]time.Duration)
		return
	}
	delete(t.timings, operation)
}
