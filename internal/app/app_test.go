package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/postwall/internal/config"
	"github.com/dropDatabas3/postwall/internal/email"
	"github.com/dropDatabas3/postwall/internal/http/server"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CACHE_KIND", "none")
	t.Setenv("BCRYPT_COST", "4")
	cfg, err := config.Load("")
	require.NoError(t, err)
	return cfg
}

func TestOpenMemory(t *testing.T) {
	ctx := context.Background()
	c, err := Open(ctx, memoryConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, c.Close()) })

	assert.Equal(t, "memory", c.Store.Name())
	assert.Nil(t, c.Cache)
	assert.IsType(t, email.NoopSender{}, c.Mailer)
	assert.Equal(t, 4, c.Hasher.Cost)

	res, err := c.Migrate(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Applied)

	rr := httptest.NewRecorder()
	server.Build(c.ServerDeps()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"cache":{"status":"disabled"}`)
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := memoryConfig(t)
	cfg.Storage.Driver = "sqlite"
	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
}
