package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/postwall/internal/cache"
	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/posts"
	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
	"github.com/dropDatabas3/postwall/internal/store/adapters/memory"
)

type fixture struct {
	store *memory.Connection
	svc   PostService
}

func newFixture(t *testing.T, withCache bool) *fixture {
	t.Helper()
	st := memory.New()
	d := Deps{Posts: st.Posts(), Users: st.Users()}
	if withCache {
		d.Cache = cache.NewPostList(cache.NewMemory(cache.Config{DefaultTTL: time.Minute}), time.Minute)
	}
	return &fixture{store: st, svc: NewPostService(d)}
}

func (f *fixture) user(t *testing.T, name string) string {
	t.Helper()
	u, err := f.store.Users().Create(context.Background(), repository.CreateUserInput{
		Name:         name,
		Email:        name + "@x.com",
		PasswordHash: "h",
		Photo:        name + ".png",
	})
	require.NoError(t, err)
	return u.ID
}

func (f *fixture) post(t *testing.T, userID, content string) string {
	t.Helper()
	p, err := f.svc.Create(context.Background(), dto.CreatePostRequest{User: strp(userID), Content: strp(content)})
	require.NoError(t, err)
	return p.ID
}

func strp(s string) *string { return &s }

func requireAppError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var appErr *httperrors.AppError
	require.True(t, errors.As(err, &appErr), "want *AppError, got %v", err)
	assert.Equal(t, status, appErr.HTTPStatus)
	assert.Equal(t, msg, appErr.Message)
}

func TestCreateValidationOrder(t *testing.T) {
	f := newFixture(t, false)
	ann := f.user(t, "ann")

	tests := []struct {
		name string
		in   dto.CreatePostRequest
		msg  string
	}{
		{"missing user", dto.CreatePostRequest{Content: strp("hi")}, "user id missing"},
		{"blank user", dto.CreatePostRequest{User: strp("  "), Content: strp("hi")}, "user id missing"},
		{"unknown user before content", dto.CreatePostRequest{User: strp("nope")}, "user id does not exist"},
		{"missing content", dto.CreatePostRequest{User: strp(ann)}, "content is required"},
		{"blank content", dto.CreatePostRequest{User: strp(ann), Content: strp(" \t ")}, "content is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tt.in)
			requireAppError(t, err, http.StatusBadRequest, tt.msg)
		})
	}

	posts, err := f.store.Posts().List(context.Background(), repository.ListPostsFilter{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCreateReturnsBareOwner(t *testing.T) {
	f := newFixture(t, false)
	ann := f.user(t, "ann")

	p, err := f.svc.Create(context.Background(), dto.CreatePostRequest{User: strp(ann), Content: strp(" hello "), Image: strp("i.png")})
	require.NoError(t, err)
	assert.Equal(t, ann, p.User)
	assert.Equal(t, "hello", p.Content)
	assert.Equal(t, "i.png", p.Image)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user":"`+ann+`"`)
}

func TestListSortFilterAndPopulate(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	ann := f.user(t, "ann")
	bob := f.user(t, "bob")
	first := f.post(t, ann, "first hello")
	f.post(t, bob, "second")
	third := f.post(t, ann, "third Hello")

	desc, err := f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, third, desc[0].ID)
	assert.Equal(t, first, desc[2].ID)
	require.NotNil(t, desc[0].User)
	assert.Equal(t, dto.AuthorResponse{Name: "ann", Photo: "ann.png"}, *desc[0].User)

	asc, err := f.svc.List(ctx, dto.ListQuery{TimeSort: "asc"})
	require.NoError(t, err)
	assert.Equal(t, first, asc[0].ID)

	other, err := f.svc.List(ctx, dto.ListQuery{TimeSort: "sideways"})
	require.NoError(t, err)
	assert.Equal(t, third, other[0].ID)

	hits, err := f.svc.List(ctx, dto.ListQuery{Q: strp("hello")})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, first, hits[0].ID)

	all, err := f.svc.List(ctx, dto.ListQuery{Q: strp("")})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.svc.List(ctx, dto.ListQuery{Q: strp("(")})
	requireAppError(t, err, http.StatusBadRequest, "q is not a valid pattern")
}

func TestListRendersDeletedOwnerAsNull(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	ann := f.user(t, "ann")
	f.post(t, ann, "orphan soon")

	_, err := f.store.Users().Delete(ctx, ann)
	require.NoError(t, err)

	list, err := f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].User)

	raw, err := json.Marshal(list[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user":null`)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	ann := f.user(t, "ann")
	p, err := f.svc.Create(ctx, dto.CreatePostRequest{User: strp(ann), Content: strp("v1"), Image: strp("a.png")})
	require.NoError(t, err)

	for _, raw := range []string{`"` + ann + `"`, `null`, `"someone"`} {
		_, err := f.svc.Update(ctx, p.ID, dto.UpdatePostRequest{User: json.RawMessage(raw), Content: strp("v2")})
		requireAppError(t, err, http.StatusBadRequest, "user is immutable")
	}

	_, err = f.svc.Update(ctx, p.ID, dto.UpdatePostRequest{Image: strp("b.png")})
	requireAppError(t, err, http.StatusBadRequest, "content is required")

	got, err := f.svc.Update(ctx, p.ID, dto.UpdatePostRequest{Content: strp(" v2 ")})
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
	assert.Equal(t, "a.png", got.Image)
	assert.Equal(t, ann, got.User)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)

	_, err = f.svc.Update(ctx, "missing", dto.UpdatePostRequest{Content: strp("x")})
	requireAppError(t, err, http.StatusNotFound, "post not found")
}

func TestDeleteAndDeleteAll(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	ann := f.user(t, "ann")
	id := f.post(t, ann, "bye")
	f.post(t, ann, "stay")

	got, err := f.svc.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "bye", got.Content)

	_, err = f.svc.Delete(ctx, id)
	requireAppError(t, err, http.StatusNotFound, "post not found")

	for i := 0; i < 2; i++ {
		out, err := f.svc.DeleteAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
	list, err := f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCachedListingSeesWrites(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	ann := f.user(t, "ann")

	list, err := f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)

	id := f.post(t, ann, "one")
	list, err = f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.svc.Update(ctx, id, dto.UpdatePostRequest{Content: strp("uno")})
	require.NoError(t, err)
	list, err = f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "uno", list[0].Content)

	_, err = f.svc.DeleteAll(ctx)
	require.NoError(t, err)
	list, err = f.svc.List(ctx, dto.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// patternRejectingPosts fails every listing the way an adapter does when it
// cannot compile the content pattern.
type patternRejectingPosts struct {
	repository.PostRepository
}

func (patternRejectingPosts) List(context.Context, repository.ListPostsFilter) ([]repository.Post, error) {
	return nil, fmt.Errorf("pg: %w: missing closing )", repository.ErrInvalidPattern)
}

func TestListMapsStorePatternErrorToBadRequest(t *testing.T) {
	st := memory.New()
	svc := NewPostService(Deps{Posts: patternRejectingPosts{}, Users: st.Users()})

	_, err := svc.List(context.Background(), dto.ListQuery{Q: strp("hello")})
	requireAppError(t, err, http.StatusBadRequest, "q is not a valid pattern")
}
