package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/postwall/internal/app"
	"github.com/dropDatabas3/postwall/internal/config"
	"github.com/dropDatabas3/postwall/internal/http/server"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

func main() {
	envErr := godotenv.Load()

	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init(logger.Config{})
		logger.L().Fatal("invalid configuration", logger.Err(err))
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
	})
	defer logger.Sync()
	log := logger.L()
	if envErr != nil {
		log.Debug("no .env file loaded", logger.Err(envErr))
	}

	if err := run(cfg); err != nil {
		log.Fatal("service stopped", logger.Err(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger.L()

	c, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Warn("closing infrastructure", logger.Err(err))
		}
	}()

	if cfg.Storage.Migrate {
		res, err := c.Migrate(ctx)
		if err != nil {
			return err
		}
		log.Info("migrations applied", logger.Count(len(res.Applied)), logger.Duration(res.Duration))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Build(c.ServerDeps()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
