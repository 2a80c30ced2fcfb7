// Package cache is a small key/value cache with memory (go-cache) and Redis
// backends. It only holds derived data; every entry can be recomputed from
// the store.
package cache

import (
	"context"
	"errors"
	"time"
)

// Client is the backend-neutral cache API.
type Client interface {
	// Get returns ErrNotFound on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value; a zero ttl uses the backend default.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Incr atomically increments an integer key, creating it at 1.
	Incr(ctx context.Context, key string) (int64, error)

	Ping(ctx context.Context) error
	Close() error
}

type Config struct {
	Driver     string // "memory" | "redis" | "none"
	Addr       string
	Password   string
	DB         int
	Prefix     string
	DefaultTTL time.Duration
}

var ErrNotFound = errors.New("cache: key not found")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// New builds the client selected by cfg.Driver. "none" returns nil, nil.
func New(cfg Config) (Client, error) {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = time.Minute
	}
	switch cfg.Driver {
	case "none":
		return nil, nil
	case "redis":
		return NewRedis(cfg)
	default:
		return NewMemory(cfg), nil
	}
}

func prefixed(prefix, k string) string {
	if prefix == "" {
		return k
	}
	return prefix + ":" + k
}
