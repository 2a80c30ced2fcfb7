package pg

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/store"
	migrations "github.com/dropDatabas3/postwall/migrations/postgres"
)

// openTestDB connects to PG_TEST_DSN, applies migrations and empties both
// tables. The test is skipped when the variable is unset.
func openTestDB(t *testing.T) store.AdapterConnection {
	t.Helper()
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}
	ctx := context.Background()

	conn, err := store.OpenAdapter(ctx, store.AdapterConfig{Name: "postgres", DSN: dsn, MaxOpenConns: 4, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	mc, ok := conn.(store.MigratableConnection)
	require.True(t, ok)
	_, err = store.NewMigrator(migrations.FS, migrations.Dir).Run(ctx, mc.MigrationExecutor())
	require.NoError(t, err)

	require.NoError(t, conn.Posts().DeleteAll(ctx))
	require.NoError(t, conn.Users().DeleteAll(ctx))
	return conn
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr("x", repository.ErrNotFound), repository.ErrNotFound)
	assert.ErrorIs(t, mapErr("x", &pgconn.PgError{Code: "23505"}), repository.ErrConflict)
	assert.ErrorIs(t, mapErr("x", &pgconn.PgError{Code: "2201B"}), repository.ErrInvalidPattern)
	assert.False(t, repository.IsInvalidPattern(mapErr("x", errors.New("boom"))))
	assert.True(t, validID("5f0c8a3e-4b7e-4d38-9d0b-8c1b2e6c9a10"))
	assert.False(t, validID("64b7f0c2e1"))
}

func TestUsersRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	users := conn.Users()

	u, err := users.Create(ctx, repository.CreateUserInput{Name: "Ann", Email: "ann@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.PasswordHash)

	_, err = users.Create(ctx, repository.CreateUserInput{Name: "Dup", Email: "ann@x.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	byEmail, err := users.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	photo := "ann.png"
	updated, err := users.Update(ctx, u.ID, repository.UpdateUserInput{Photo: &photo})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name)
	assert.Equal(t, "ann.png", updated.Photo)

	_, err = users.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.Delete(ctx, u.ID)
	require.NoError(t, err)
	_, err = users.Delete(ctx, u.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPostsListJoinsAuthor(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	ann, err := conn.Users().Create(ctx, repository.CreateUserInput{Name: "Ann", Email: "ann@x.com", PasswordHash: "h", Photo: "p.png"})
	require.NoError(t, err)

	for _, c := range []string{"hello one", "nothing", "two hello"} {
		_, err := conn.Posts().Create(ctx, repository.CreatePostInput{UserID: ann.ID, Content: c})
		require.NoError(t, err)
	}

	got, err := conn.Posts().List(ctx, repository.ListPostsFilter{Sort: repository.OldestFirst, ContentPattern: "hello", HasPattern: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello one", got[0].Content)
	assert.Equal(t, &repository.PostAuthor{Name: "Ann", Photo: "p.png"}, got[0].Author)

	_, err = conn.Users().Delete(ctx, ann.ID)
	require.NoError(t, err)

	got, err = conn.Posts().List(ctx, repository.ListPostsFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Nil(t, got[0].Author)
}

func TestPostsListUsesGoRegexpDialect(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()

	ann, err := conn.Users().Create(ctx, repository.CreateUserInput{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	for _, c := range []string{"hello world", "othello"} {
		_, err := conn.Posts().Create(ctx, repository.CreatePostInput{UserID: ann.ID, Content: c})
		require.NoError(t, err)
	}

	// \b is a word boundary in RE2 and a backspace in POSIX ARE.
	got, err := conn.Posts().List(ctx, repository.ListPostsFilter{ContentPattern: `\bhello`, HasPattern: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello world", got[0].Content)

	got, err = conn.Posts().List(ctx, repository.ListPostsFilter{ContentPattern: `(?P<n>ello)`, HasPattern: true})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = conn.Posts().List(ctx, repository.ListPostsFilter{ContentPattern: `(`, HasPattern: true})
	assert.ErrorIs(t, err, repository.ErrInvalidPattern)
}
