// Package store mantiene el registro de adapters de almacenamiento.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
)

// Adapter abre conexiones a un backend de almacenamiento.
type Adapter interface {
	Name() string
	Connect(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error)
}

// AdapterConnection es una conexión activa que expone los repositorios.
type AdapterConnection interface {
	Name() string
	Ping(ctx context.Context) error
	Close() error

	Users() repository.UserRepository
	Posts() repository.PostRepository
}

// MigratableConnection la implementan las conexiones SQL.
type MigratableConnection interface {
	MigrationExecutor() SQLExecutor
}

type AdapterConfig struct {
	// Name elige el adapter: "postgres" o "memory".
	Name string
	DSN  string

	MaxOpenConns int
	MaxIdleConns int
}

var (
	registryMu sync.RWMutex
	adapters   = make(map[string]Adapter)
)

// RegisterAdapter se llama desde el init() de cada paquete de adapter.
func RegisterAdapter(a Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := a.Name()
	if _, exists := adapters[name]; exists {
		panic(fmt.Sprintf("adapter: %q already registered", name))
	}
	adapters[name] = a
}

func GetAdapter(name string) (Adapter, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := adapters[name]
	return a, ok
}

// ListAdapters retorna los nombres de adapters registrados, ordenados.
func ListAdapters() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenAdapter conecta usando el adapter indicado en cfg.
func OpenAdapter(ctx context.Context, cfg AdapterConfig) (AdapterConnection, error) {
	a, ok := GetAdapter(cfg.Name)
	if !ok {
		return nil, fmt.Errorf("adapter: %q not registered", cfg.Name)
	}
	return a.Connect(ctx, cfg)
}
