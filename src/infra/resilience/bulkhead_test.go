package resilience

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqhub/src/core/domain"
)

func TestBulkheadAdmitsUpToSlots(t *testing.T) {
	b := NewBulkhead(2, 0)
	ctx := context.Background()

	r1, err := b.Acquire(ctx)
	require.NoError(t, err)
	r2, err := b.Acquire(ctx)
	require.NoError(t, err)

	_, err = b.Acquire(ctx)
	require.Error(t, err)
	assert.True(t, domain.IsOverloaded(err))
	assert.Equal(t, "Service experience high loads. Try again later.", err.Error())

	r1()
	r2()

	r3, err := b.Acquire(ctx)
	require.NoError(t, err)
	r3()
}

func TestBulkheadQueueWaitsForSlot(t *testing.T) {
	b := NewBulkhead(1, 1)
	ctx := context.Background()

	release, err := b.Acquire(ctx)
	require.NoError(t, err)

	started := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		close(started)
		r, err := b.Acquire(ctx)
		assert.NoError(t, err)
		if err == nil {
			r()
		}
	}()

	<-started
	time.Sleep(20 * time.Millisecond)
	release()
	wg.Wait()
}

func TestBulkheadRejectsOverTotalCapacity(t *testing.T) {
	b := NewBulkhead(1, 1)
	ctx := context.Background()

	release, err := b.Acquire(ctx)
	require.NoError(t, err)
	defer release()

	waiting := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		close(waiting)
		waitCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
		_, err := b.Acquire(waitCtx)
		assert.True(t, domain.IsTimeout(err))
	}()

	<-waiting
	time.Sleep(20 * time.Millisecond)

	// slot busy, queue occupied by the waiter above
	_, err = b.Acquire(ctx)
	require.Error(t, err)
	assert.True(t, domain.IsOverloaded(err))

	<-done
}

func TestBulkheadDo(t *testing.T) {
	b := NewBulkhead(1, 0)

	ran := false
	err := b.Do(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}

func TestBulkheadFallbackCapacity(t *testing.T) {
	b := NewBulkhead(0, -1)

	release, err := b.Acquire(context.Background())
	require.NoError(t, err)
	defer release()

	_, err = b.Acquire(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsOverloaded(err))
}
