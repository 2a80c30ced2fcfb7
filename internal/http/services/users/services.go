// Package users implements the member workflows: registration, log-in,
// password changes and profile administration.
package users

import (
	"context"
	"time"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/email"
	"github.com/dropDatabas3/postwall/internal/metrics"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

// PasswordHasher is satisfied by password.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenSigner is satisfied by *jwt.Issuer.
type TokenSigner interface {
	Sign(sub string) (string, time.Time, error)
}

// ListingInvalidator drops cached post listings. Profile changes and
// deletions alter the author projection shown next to posts.
type ListingInvalidator interface {
	Invalidate(ctx context.Context) error
}

type Deps struct {
	Users   repository.UserRepository
	Hasher  PasswordHasher
	Signer  TokenSigner
	Mailer  email.Sender       // nil disables welcome mail
	Metrics *metrics.Metrics   // nil disables counters
	Posts   ListingInvalidator // nil when listings are not cached
}

type Services struct {
	Account AccountService
	Users   UserService
}

func NewServices(d Deps) Services {
	return Services{
		Account: NewAccountService(d),
		Users:   NewUserService(d),
	}
}

func invalidateListings(ctx context.Context, inv ListingInvalidator) {
	if inv == nil {
		return
	}
	if err := inv.Invalidate(ctx); err != nil {
		logger.From(ctx).Warn("post listing invalidation failed", logger.Layer("service"), logger.Err(err))
	}
}
