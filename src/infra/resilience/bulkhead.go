// Package resilience provides the boundary protections composed around
// repository calls: a bounded-concurrency admission gate and a failure-rate
// circuit breaker. Each is independently testable; the HTTP middleware in
// src/app/middleware only wires them onto routes.
package resilience

import (
	"context"

	"golang.org/x/sync/semaphore"

	"faqhub/src/core/domain"
)

// Bulkhead bounds concurrent in-flight calls plus a bounded waiting queue.
// Callers beyond slots+queue capacity are rejected immediately with an
// overloaded failure instead of queueing indefinitely.
type Bulkhead struct {
	// admitted bounds everyone inside the bulkhead, executing or waiting.
	admitted *semaphore.Weighted
	// slots bounds actual execution; admitted waiters block here.
	slots *semaphore.Weighted
}

// NewBulkhead creates a bulkhead with the given execution slots and waiting
// queue capacity. Non-positive values fall back to 1 slot / no queue.
func NewBulkhead(slots, queue int) *Bulkhead {
	if slots <= 0 {
		slots = 1
	}
	if queue < 0 {
		queue = 0
	}
	return &Bulkhead{
		admitted: semaphore.NewWeighted(int64(slots + queue)),
		slots:    semaphore.NewWeighted(int64(slots)),
	}
}

// Acquire admits the caller or fails fast. A caller over total capacity gets
// an overloaded failure immediately; an admitted caller waits for a slot
// until its context expires. The returned release function must be called
// exactly once when the protected call finishes.
func (b *Bulkhead) Acquire(ctx context.Context) (release func(), err error) {
	if !b.admitted.TryAcquire(1) {
		return nil, domain.NewOverloadedError()
	}
	if err := b.slots.Acquire(ctx, 1); err != nil {
		b.admitted.Release(1)
		return nil, domain.NewTimeoutError()
	}
	return func() {
		b.slots.Release(1)
		b.admitted.Release(1)
	}, nil
}

// Do runs fn under the bulkhead.
func (b *Bulkhead) Do(ctx context.Context, fn func(context.Context) error) error {
	release, err := b.Acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(ctx)
}
