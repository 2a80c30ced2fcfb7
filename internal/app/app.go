// Package app opens the infrastructure described by a Config and hands it
// to the HTTP server and the admin CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropDatabas3/postwall/internal/cache"
	"github.com/dropDatabas3/postwall/internal/config"
	"github.com/dropDatabas3/postwall/internal/email"
	"github.com/dropDatabas3/postwall/internal/http/server"
	"github.com/dropDatabas3/postwall/internal/jwt"
	"github.com/dropDatabas3/postwall/internal/metrics"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
	"github.com/dropDatabas3/postwall/internal/security/password"
	"github.com/dropDatabas3/postwall/internal/store"
	migrations "github.com/dropDatabas3/postwall/migrations/postgres"

	// adapters register themselves with the store registry
	_ "github.com/dropDatabas3/postwall/internal/store/adapters/memory"
	_ "github.com/dropDatabas3/postwall/internal/store/adapters/pg"
)

type Container struct {
	Config  *config.Config
	Store   store.AdapterConnection
	Cache   cache.Client // nil when cache.kind is none
	Issuer  *jwt.Issuer
	Hasher  password.Hasher
	Mailer  email.Sender
	Metrics *metrics.Metrics
}

// Open connects the store and the cache. On failure everything opened so
// far is closed again.
func Open(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.From(ctx).With(logger.Component("app"))

	issuer, err := jwt.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	m, err := metrics.New()
	if err != nil {
		return nil, fmt.Errorf("app: metrics: %w", err)
	}

	conn, err := store.OpenAdapter(ctx, store.AdapterConfig{
		Name:         cfg.Storage.Driver,
		DSN:          cfg.Storage.DSN,
		MaxOpenConns: cfg.Storage.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Storage.Postgres.MaxIdleConns,
	})
	if err != nil {
		return nil, fmt.Errorf("app: open store: %w", err)
	}
	log.Info("store connected", logger.String("driver", conn.Name()))

	cc, err := cache.New(cache.Config{
		Driver:     cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		Password:   cfg.Cache.Redis.Password,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cfg.Cache.TTL,
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("app: open cache: %w", err)
	}
	log.Info("cache ready", logger.String("kind", cfg.Cache.Kind))

	var mailer email.Sender = email.NoopSender{}
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPSender(email.SMTPConfig{
			Host:               cfg.SMTP.Host,
			Port:               cfg.SMTP.Port,
			From:               cfg.SMTP.From,
			User:               cfg.SMTP.Username,
			Pass:               cfg.SMTP.Password,
			TLSMode:            cfg.SMTP.TLS,
			InsecureSkipVerify: cfg.SMTP.InsecureSkipVerify,
		})
	}

	return &Container{
		Config:  cfg,
		Store:   conn,
		Cache:   cc,
		Issuer:  issuer,
		Hasher:  password.NewHasher(cfg.Password.BcryptCost),
		Mailer:  mailer,
		Metrics: m,
	}, nil
}

// Migrate applies the embedded schema. Stores without SQL migrations are a
// no-op.
func (c *Container) Migrate(ctx context.Context) (*store.MigrationResult, error) {
	mc, ok := c.Store.(store.MigratableConnection)
	if !ok {
		return &store.MigrationResult{}, nil
	}
	return store.NewMigrator(migrations.FS, migrations.Dir).Run(ctx, mc.MigrationExecutor())
}

// ServerDeps adapts the container to the HTTP server wiring.
func (c *Container) ServerDeps() server.Deps {
	return server.Deps{
		Store:       c.Store,
		Cache:       c.Cache,
		Issuer:      c.Issuer,
		Hasher:      c.Hasher,
		Mailer:      c.Mailer,
		Metrics:     c.Metrics,
		CacheTTL:    c.Config.Cache.TTL,
		CORSOrigins: c.Config.Server.CORSAllowedOrigins,
		Version:     c.Config.App.Version,
	}
}

func (c *Container) Close() error {
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	errs = append(errs, c.Store.Close())
	return errors.Join(errs...)
}
