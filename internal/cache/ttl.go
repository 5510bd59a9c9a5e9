package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TTL is a string-keyed cache. An entry is fresh while its age is below the
// ttl.
// Freshness is checked on every read; Purge only reclaims memory.
type TTL[V any] struct {
	mu    sync.RWMutex
	data  map[string]entry[V]
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	fetchTimeout time.Duration
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

func New[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		data: make(map[string]entry[V]),
		ttl:  ttl,
		now:  time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (c *TTL[V]) WithClock(now func() time.Time) *TTL[V] {
	c.now = now
	return c
}

// WithFetchTimeout bounds each fetch started by GetOrFetch.
func (c *TTL[V]) WithFetchTimeout(d time.Duration) *TTL[V] {
	c.fetchTimeout = d
	return c
}

func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry[V]{value: value, storedAt: c.now()}
}

// GetOrFetch returns the cached value for key or runs fetch once, even when
// many goroutines ask for the same key at the same time. Only successful
// fetches are stored. The fetch runs detached from ctx cancellation so a
// caller giving up does not throw away a result others may still use.
func (c *TTL[V]) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		fctx := context.WithoutCancel(ctx)
		if c.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, c.fetchTimeout)
			defer cancel()
		}
		v, err := fetch(fctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})

	select {
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	case res := <-ch:
		v, _ := res.Val.(V)
		return v, res.Err
	}
}

// Purge drops expired entries and reports how many were removed.
func (c *TTL[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for k, e := range c.data {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
