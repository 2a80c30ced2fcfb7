// Package pg implements the PostgreSQL store adapter on top of pgxpool.
package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/store"
)

func init() {
	store.RegisterAdapter(&postgresAdapter{})
}

type postgresAdapter struct{}

func (a *postgresAdapter) Name() string { return "postgres" }

func (a *postgresAdapter) Connect(ctx context.Context, cfg store.AdapterConfig) (store.AdapterConnection, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("pg: parse DSN: %w", err)
	}

	poolCfg.MaxConns = 10
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	}
	poolCfg.MinConns = 2
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = int32(cfg.MaxIdleConns)
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pg: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg: ping failed: %w", err)
	}
	return &pgConnection{pool: pool}, nil
}

type pgConnection struct {
	pool *pgxpool.Pool
}

func (c *pgConnection) Name() string                   { return "postgres" }
func (c *pgConnection) Ping(ctx context.Context) error { return c.pool.Ping(ctx) }

func (c *pgConnection) Close() error {
	c.pool.Close()
	return nil
}

func (c *pgConnection) Users() repository.UserRepository { return &userRepo{pool: c.pool} }
func (c *pgConnection) Posts() repository.PostRepository { return &postRepo{pool: c.pool} }

// MigrationExecutor implements store.MigratableConnection.
func (c *pgConnection) MigrationExecutor() store.SQLExecutor { return c.pool }

// validID reports whether id can address a row. Ids are UUIDs, and anything
// else can only ever be "not found".
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// mapErr translates driver errors into repository sentinels.
func mapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return repository.ErrConflict
		case "22P02": // invalid_text_representation
			return repository.ErrNotFound
		case "2201B": // invalid_regular_expression
			return repository.ErrInvalidPattern
		}
	}
	return fmt.Errorf("pg: %s: %w", op, err)
}
