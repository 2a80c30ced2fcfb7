package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryClient struct {
	c      *gocache.Cache
	prefix string
	incrMu sync.Mutex
}

// NewMemory returns an in-process client backed by go-cache.
func NewMemory(cfg Config) Client {
	ttl := cfg.DefaultTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &memoryClient{c: gocache.New(ttl, 2*ttl), prefix: cfg.Prefix}
}

func (m *memoryClient) Get(_ context.Context, key string) (string, error) {
	v, ok := m.c.Get(prefixed(m.prefix, key))
	if !ok {
		return "", ErrNotFound
	}
	s, _ := v.(string)
	return s, nil
}

func (m *memoryClient) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.c.Set(prefixed(m.prefix, key), value, ttl)
	return nil
}

// Incr keeps counters as decimal strings so Get reads them the same way it
// does on Redis. Counters never expire.
func (m *memoryClient) Incr(_ context.Context, key string) (int64, error) {
	m.incrMu.Lock()
	defer m.incrMu.Unlock()

	k := prefixed(m.prefix, key)
	var n int64
	if v, ok := m.c.Get(k); ok {
		n, _ = strconv.ParseInt(v.(string), 10, 64)
	}
	n++
	m.c.Set(k, strconv.FormatInt(n, 10), gocache.NoExpiration)
	return n, nil
}

func (m *memoryClient) Ping(context.Context) error { return nil }

func (m *memoryClient) Close() error {
	m.c.Flush()
	return nil
}
