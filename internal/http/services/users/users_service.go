package users

import (
	"context"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
	"github.com/dropDatabas3/postwall/internal/validation"
)

// UserService covers profile reads and the administrative operations.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id string) (*dto.UserResponse, error)
	DeleteAll(ctx context.Context) ([]dto.UserResponse, error)

	// Create is the administrative counterpart of sign-up: same checks,
	// also stores the photo, and returns the user instead of a token.
	Create(ctx context.Context, in dto.SignUpRequest) (*dto.UserResponse, error)
}

type userService struct {
	deps Deps
}

func NewUserService(d Deps) UserService {
	return &userService{deps: d}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.deps.Users.List(ctx)
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := s.deps.Users.GetByID(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("users.profile"),
		logger.Op("Update"),
		logger.UserID(id),
	)

	var name string
	err := validation.Chain{
		validation.When(func() bool { return in.Email == nil }, fail(ErrEmailImmutable)),
		validation.Present(&name, in.Name, fail(ErrNameRequired)),
	}.Run(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.deps.Users.Update(ctx, id, repository.UpdateUserInput{Name: &name, Photo: in.Photo})
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	invalidateListings(ctx, s.deps.Posts)

	log.Debug("profile updated")
	resp := toUserResponse(u)
	return &resp, nil
}

// Delete leaves the user's posts in place; listings show them without an
// author from then on.
func (s *userService) Delete(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := s.deps.Users.Delete(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	invalidateListings(ctx, s.deps.Posts)

	logger.From(ctx).Info("user deleted", logger.Layer("service"), logger.Op("Users.Delete"), logger.UserID(u.ID))
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *userService) DeleteAll(ctx context.Context) ([]dto.UserResponse, error) {
	if err := s.deps.Users.DeleteAll(ctx); err != nil {
		return nil, httperrors.Unexpected(err)
	}
	invalidateListings(ctx, s.deps.Posts)

	logger.From(ctx).Warn("all users deleted", logger.Layer("service"), logger.Op("Users.DeleteAll"))
	return []dto.UserResponse{}, nil
}

func (s *userService) Create(ctx context.Context, in dto.SignUpRequest) (*dto.UserResponse, error) {
	var f memberFields
	if err := signUpChain(s.deps.Users, in, &f).Run(ctx); err != nil {
		return nil, err
	}

	hash, err := hashPassword(s.deps.Hasher, *in.Password)
	if err != nil {
		return nil, err
	}

	var photo string
	if in.Photo != nil {
		photo = *in.Photo
	}
	u, err := s.deps.Users.Create(ctx, repository.CreateUserInput{
		Name:         f.name,
		Email:        f.email,
		PasswordHash: hash,
		Photo:        photo,
	})
	if repository.IsConflict(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}

	logger.From(ctx).Info("user created", logger.Layer("service"), logger.Op("Users.Create"), logger.UserID(u.ID))
	resp := toUserResponse(u)
	return &resp, nil
}
