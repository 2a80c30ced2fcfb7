package posts

import (
	"context"
	"regexp"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/posts"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
	"github.com/dropDatabas3/postwall/internal/validation"
)

type PostService interface {
	List(ctx context.Context, q dto.ListQuery) ([]dto.PostListItem, error)
	Create(ctx context.Context, in dto.CreatePostRequest) (*dto.PostResponse, error)
	Update(ctx context.Context, id string, in dto.UpdatePostRequest) (*dto.PostResponse, error)
	Delete(ctx context.Context, id string) (*dto.PostResponse, error)
	DeleteAll(ctx context.Context) ([]dto.PostResponse, error)
}

type postService struct {
	deps Deps
}

func NewPostService(d Deps) PostService {
	return &postService{deps: d}
}

// List sorts oldest first only for timeSort=asc. A q parameter, even empty,
// is compiled as a regular expression over content.
func (s *postService) List(ctx context.Context, q dto.ListQuery) ([]dto.PostListItem, error) {
	f := repository.ListPostsFilter{Sort: repository.NewestFirst}
	if q.TimeSort == "asc" {
		f.Sort = repository.OldestFirst
	}
	if q.Q != nil {
		if _, err := regexp.Compile(*q.Q); err != nil {
			return nil, ErrBadPattern.WithCause(err)
		}
		f.ContentPattern, f.HasPattern = *q.Q, true
	}

	posts, err := s.deps.Cache.List(ctx, f, func(ctx context.Context) ([]repository.Post, error) {
		return s.deps.Posts.List(ctx, f)
	})
	if repository.IsInvalidPattern(err) {
		return nil, ErrBadPattern.WithCause(err)
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}

	out := make([]dto.PostListItem, 0, len(posts))
	for i := range posts {
		out = append(out, toListItem(&posts[i]))
	}
	return out, nil
}

func (s *postService) Create(ctx context.Context, in dto.CreatePostRequest) (*dto.PostResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component("posts"),
		logger.Op("Create"),
	)

	var userID, content string
	err := validation.Chain{
		validation.Present(&userID, in.User, fail(ErrUserMissing)),
		validation.WhenCtx(func(ctx context.Context) (bool, error) {
			_, err := s.deps.Users.GetByID(ctx, userID)
			if repository.IsNotFound(err) {
				return false, nil
			}
			return err == nil, err
		}, fail(ErrUserUnknown)),
		validation.Present(&content, in.Content, fail(ErrContentRequired)),
	}.Run(ctx)
	if err != nil {
		return nil, err
	}

	var image string
	if in.Image != nil {
		image = *in.Image
	}
	p, err := s.deps.Posts.Create(ctx, repository.CreatePostInput{UserID: userID, Content: content, Image: image})
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	s.invalidate(ctx)
	s.deps.Metrics.PostCreated()

	log.Info("post created", logger.PostID(p.ID), logger.UserID(userID))
	resp := toPostResponse(p)
	return &resp, nil
}

func (s *postService) Update(ctx context.Context, id string, in dto.UpdatePostRequest) (*dto.PostResponse, error) {
	var content string
	err := validation.Chain{
		validation.When(func() bool { return in.User == nil }, fail(ErrUserImmutable)),
		validation.Present(&content, in.Content, fail(ErrContentRequired)),
	}.Run(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.deps.Posts.Update(ctx, id, repository.UpdatePostInput{Content: &content, Image: in.Image})
	if repository.IsNotFound(err) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	s.invalidate(ctx)

	logger.From(ctx).Debug("post updated", logger.Layer("service"), logger.Op("Posts.Update"), logger.PostID(p.ID))
	resp := toPostResponse(p)
	return &resp, nil
}

func (s *postService) Delete(ctx context.Context, id string) (*dto.PostResponse, error) {
	p, err := s.deps.Posts.Delete(ctx, id)
	if repository.IsNotFound(err) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, httperrors.Unexpected(err)
	}
	s.invalidate(ctx)

	logger.From(ctx).Info("post deleted", logger.Layer("service"), logger.Op("Posts.Delete"), logger.PostID(p.ID))
	resp := toPostResponse(p)
	return &resp, nil
}

func (s *postService) DeleteAll(ctx context.Context) ([]dto.PostResponse, error) {
	if err := s.deps.Posts.DeleteAll(ctx); err != nil {
		return nil, httperrors.Unexpected(err)
	}
	s.invalidate(ctx)

	logger.From(ctx).Warn("all posts deleted", logger.Layer("service"), logger.Op("Posts.DeleteAll"))
	return []dto.PostResponse{}, nil
}

func (s *postService) invalidate(ctx context.Context) {
	if err := s.deps.Cache.Invalidate(ctx); err != nil {
		logger.From(ctx).Warn("post listing invalidation failed", logger.Layer("service"), logger.Err(err))
	}
}
