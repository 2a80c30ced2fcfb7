package users

import (
	"context"
	"errors"
	"sync"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
	"github.com/dropDatabas3/postwall/internal/security/password"
	"github.com/dropDatabas3/postwall/internal/util"
	"github.com/dropDatabas3/postwall/internal/validation"
)

// AccountService covers the credential workflows.
type AccountService interface {
	Register(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error)
	LogIn(ctx context.Context, in dto.LogInRequest) (*dto.AuthResponse, error)
	// UpdatePassword changes the password of userID, the authenticated caller.
	UpdatePassword(ctx context.Context, userID string, in dto.UpdatePasswordRequest) (*dto.AuthResponse, error)
}

type accountService struct {
	deps Deps

	// dummyHash is compared against when the email is unknown so that both
	// log-in failures cost one bcrypt comparison.
	dummyOnce sync.Once
	dummyHash string
}

func NewAccountService(d Deps) AccountService {
	return &accountService{deps: d}
}

func (s *accountService) Register(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users.account"),
		logger.Op("Register"),
	)

	var f memberFields
	if err := signUpChain(s.deps.Users, in, &f).Run(ctx); err != nil {
		return nil, err
	}

	hash, err := s.hash(*in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.deps.Users.Create(ctx, repository.CreateUserInput{
		Name:         f.name,
		Email:        f.email,
		PasswordHash: hash,
	})
	if repository.IsConflict(err) {
		// lost a race with a concurrent sign-up for the same address
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	log = log.With(logger.UserID(u.ID))

	token, _, err := s.deps.Signer.Sign(u.ID)
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}

	s.deps.Metrics.UserRegistered()
	if s.deps.Mailer != nil {
		if err := s.deps.Mailer.SendWelcome(ctx, u.Email, u.Name); err != nil {
			log.Warn("welcome mail failed", logger.Email(util.MaskEmail(u.Email)), logger.Err(err))
		}
	}
	log.Info("user registered")
	return &dto.AuthResponse{Token: token, Name: u.Name}, nil
}

func (s *accountService) LogIn(ctx context.Context, in dto.LogInRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users.account"),
		logger.Op("LogIn"),
	)

	var email string
	err := validation.Chain{
		validation.Present(&email, normalizeEmail(in.Email), fail(ErrEmailRequired)),
		validation.When(func() bool { return validation.Provided(in.Password) }, fail(ErrPasswordRequired)),
	}.Run(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.deps.Users.GetByEmail(ctx, email)
	if err != nil && !repository.IsNotFound(err) {
		return nil, httperrors.Unexpected(err)
	}
	if u == nil {
		s.deps.Hasher.Verify(s.dummy(), *in.Password)
		s.deps.Metrics.LoginFailed()
		log.Debug("log in rejected: unknown email", logger.Email(util.MaskEmail(email)))
		return nil, ErrInvalidCredentials
	}
	if !s.deps.Hasher.Verify(u.PasswordHash, *in.Password) {
		s.deps.Metrics.LoginFailed()
		log.Debug("log in rejected: wrong password", logger.UserID(u.ID))
		return nil, ErrInvalidCredentials
	}

	token, _, err := s.deps.Signer.Sign(u.ID)
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	log.Info("user logged in", logger.UserID(u.ID))
	return &dto.AuthResponse{Token: token, Name: u.Name}, nil
}

func (s *accountService) UpdatePassword(ctx context.Context, userID string, in dto.UpdatePasswordRequest) (*dto.AuthResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users.account"),
		logger.Op("UpdatePassword"),
		logger.UserID(userID),
	)

	c := validation.Chain{
		validation.When(func() bool { return validation.Provided(in.Password) }, fail(ErrPasswordRequired)),
	}
	c = append(c, passwordRules("newPassword", in.NewPassword, in.ConfirmPassword)...)
	if err := c.Run(ctx); err != nil {
		return nil, err
	}

	u, err := s.deps.Users.GetByID(ctx, userID)
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	if !s.deps.Hasher.Verify(u.PasswordHash, *in.Password) {
		log.Debug("password change rejected: current password mismatch")
		return nil, ErrInvalidCredentials
	}

	hash, err := s.hash(*in.NewPassword)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Users.UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, httperrors.Unexpected(err)
	}

	token, _, err := s.deps.Signer.Sign(u.ID)
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	log.Info("password updated")
	return &dto.AuthResponse{Token: token, Name: u.Name}, nil
}

func (s *accountService) hash(plain string) (string, error) {
	return hashPassword(s.deps.Hasher, plain)
}

func (s *accountService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.deps.Hasher.Hash("postwall-dummy-password")
	})
	return s.dummyHash
}

func hashPassword(h PasswordHasher, plain string) (string, error) {
	hash, err := h.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return "", errTooLong("password", maxPasswordBytes)
	}
	if err != nil {
		return "", httperrors.Unexpected(err)
	}
	return hash, nil
}
