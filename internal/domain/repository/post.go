package repository

import (
	"context"
	"time"
)

// Post is a message owned by a user. Author is only set by PostRepository.List
// and stays nil there when the owner no longer exists.
type Post struct {
	ID        string
	UserID    string
	Content   string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Author    *PostAuthor
}

// PostAuthor is the projection of a User exposed next to a post.
type PostAuthor struct {
	Name  string
	Photo string
}

type SortOrder int

const (
	NewestFirst SortOrder = iota
	OldestFirst
)

// ListPostsFilter narrows PostRepository.List. ContentPattern is a Go
// (RE2) regular expression matched unanchored and case-sensitively against
// Content; it is ignored when HasPattern is false. Every adapter evaluates it
// with package regexp and returns ErrInvalidPattern when it does not compile.
type ListPostsFilter struct {
	Sort           SortOrder
	ContentPattern string
	HasPattern     bool
}

type CreatePostInput struct {
	UserID  string
	Content string
	Image   string
}

// UpdatePostInput has no UserID: ownership is fixed at creation.
type UpdatePostInput struct {
	Content *string
	Image   *string
}

type PostRepository interface {
	List(ctx context.Context, f ListPostsFilter) ([]Post, error)
	Create(ctx context.Context, in CreatePostInput) (*Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*Post, error)
	Delete(ctx context.Context, id string) (*Post, error)
	DeleteAll(ctx context.Context) error
}
