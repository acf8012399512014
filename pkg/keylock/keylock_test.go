package keylock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_TimesOutWhileHeld(t *testing.T) {
	l := New(20 * time.Millisecond)

	release, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release()

	_, err = l.Acquire(context.Background(), 1)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestAcquire_IndependentKeys(t *testing.T) {
	l := New(20 * time.Millisecond)

	release1, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	defer release1()

	release2, err := l.Acquire(context.Background(), 2)
	require.NoError(t, err)
	release2()
}

func TestAcquire_PartialFailureReleasesAcquired(t *testing.T) {
	l := New(20 * time.Millisecond)

	hold, err := l.Acquire(context.Background(), 2)
	require.NoError(t, err)

	_, err = l.Acquire(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrTimeout)

	// ключ 1 должен быть свободен после неудачи
	release, err := l.Acquire(context.Background(), 1)
	require.NoError(t, err)
	release()
	hold()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.entries)
}

func TestAcquire_SerializesSameKey(t *testing.T) {
	l := New(time.Second)

	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), 7, 7)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestAcquire_ParentContextCancelled(t *testing.T) {
	l := New(time.Second)

	hold, err := l.Acquire(context.Background(), 3)
	require.NoError(t, err)
	defer hold()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}
