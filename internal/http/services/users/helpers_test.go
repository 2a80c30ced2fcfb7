package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/jwt"
	"github.com/dropDatabas3/postwall/internal/security/password"
	"github.com/dropDatabas3/postwall/internal/store/adapters/memory"
)

func strp(s string) *string { return &s }

type fixture struct {
	store  *memory.Connection
	issuer *jwt.Issuer
	hasher password.Hasher
	mailer *recordingMailer
	inv    *countingInvalidator
	svcs   Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	issuer, err := jwt.NewIssuer("postwall-test", "test-secret", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		store:  memory.New(),
		issuer: issuer,
		hasher: password.NewHasher(bcrypt.MinCost),
		mailer: &recordingMailer{},
		inv:    &countingInvalidator{},
	}
	f.svcs = NewServices(Deps{
		Users:  f.store.Users(),
		Hasher: f.hasher,
		Signer: f.issuer,
		Mailer: f.mailer,
		Posts:  f.inv,
	})
	return f
}

func (f *fixture) register(t *testing.T, name, email string) string {
	t.Helper()
	resp, err := f.svcs.Account.Register(context.Background(), signUp(name, email, "12345678", "12345678"))
	require.NoError(t, err)
	id, err := f.issuer.Parse(resp.Token)
	require.NoError(t, err)
	return id
}

func requireAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	require.Error(t, err)
	var appErr *httperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected *AppError, got %T: %v", err, err)
	require.Equal(t, status, appErr.HTTPStatus)
	require.Equal(t, msg, appErr.Message)
}

type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.sent = append(m.sent, to)
	return m.err
}

type countingInvalidator struct{ calls int }

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return nil
}

// racingUsers behaves like a store where another sign-up takes the address
// between the uniqueness check and the insert.
type racingUsers struct {
	repository.UserRepository
	creates int
}

func (r *racingUsers) GetByEmail(context.Context, string) (*repository.User, error) {
	return nil, repository.ErrNotFound
}

func (r *racingUsers) Create(context.Context, repository.CreateUserInput) (*repository.User, error) {
	r.creates++
	return nil, repository.ErrConflict
}
