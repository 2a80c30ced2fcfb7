// Package memory is a process-local store adapter. It backs tests and
// single-instance deployments that do not need durability.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/store"
)

func init() {
	store.RegisterAdapter(&memoryAdapter{})
}

type memoryAdapter struct{}

func (a *memoryAdapter) Name() string { return "memory" }

func (a *memoryAdapter) Connect(context.Context, store.AdapterConfig) (store.AdapterConnection, error) {
	return New(), nil
}

// Connection holds both collections behind one lock so that the post list
// can project authors consistently.
type Connection struct {
	mu      sync.RWMutex
	seq     int64
	users   map[string]*userRecord
	byEmail map[string]string
	posts   map[string]*postRecord
	now     func() time.Time
}

type userRecord struct {
	repository.User
	seq int64
}

type postRecord struct {
	repository.Post
	seq int64
}

// New returns an empty store.
func New() *Connection {
	return &Connection{
		users:   make(map[string]*userRecord),
		byEmail: make(map[string]string),
		posts:   make(map[string]*postRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (c *Connection) Name() string               { return "memory" }
func (c *Connection) Ping(context.Context) error { return nil }
func (c *Connection) Close() error               { return nil }

func (c *Connection) Users() repository.UserRepository { return &userRepo{c: c} }
func (c *Connection) Posts() repository.PostRepository { return &postRepo{c: c} }

// nextSeq must be called with mu held for writing.
func (c *Connection) nextSeq() int64 {
	c.seq++
	return c.seq
}
