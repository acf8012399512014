package keylock

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimeout возвращается, если блокировку не удалось получить за отведённое время
var ErrTimeout = errors.New("keylock: lock acquisition timed out")

// Locker эксклюзивные блокировки по целочисленному ключу с ограниченным ожиданием.
// Блокировки разных ключей независимы
type Locker struct {
	mu      sync.Mutex
	entries map[int64]*entry
	timeout time.Duration
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// New создаёт Locker; timeout <= 0 означает ожидание до отмены контекста
func New(timeout time.Duration) *Locker {
	return &Locker{
		entries: make(map[int64]*entry),
		timeout: timeout,
	}
}

// Acquire захватывает все ключи в порядке возрастания и возвращает функцию освобождения.
// При неудаче уже захваченные ключи отпускаются
func (l *Locker) Acquire(ctx context.Context, keys ...int64) (func(), error) {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	acquired := make([]int64, 0, len(ordered))
	for _, key := range ordered {
		e := l.ref(key)
		if err := e.sem.Acquire(waitCtx, 1); err != nil {
			l.unref(key)
			l.release(acquired)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: key=%d after %s", ErrTimeout, key, l.timeout)
		}
		acquired = append(acquired, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(acquired) })
	}, nil
}

func (l *Locker) release(keys []int64) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()

		e.sem.Release(1)
		l.unref(keys[i])
	}
}

func (l *Locker) ref(key int64) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) unref(key int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
