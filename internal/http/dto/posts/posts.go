// Package posts holds the request and response bodies of the /post and
// /posts endpoints.
package posts

import (
	"encoding/json"
	"time"
)

// ListQuery comes from the query string of GET /posts. Q is nil when the
// parameter is absent; an empty q still filters (and matches everything).
type ListQuery struct {
	TimeSort string
	Q        *string
}

type CreatePostRequest struct {
	User    *string `json:"user"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

// UpdatePostRequest keeps User raw: any value, null included, is rejected.
type UpdatePostRequest struct {
	User    json.RawMessage `json:"user"`
	Content *string         `json:"content"`
	Image   *string         `json:"image"`
}

// PostResponse carries the bare owner id.
type PostResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostListItem carries the owner projected to name and photo, or null when
// the owner no longer exists.
type PostListItem struct {
	ID        string          `json:"id"`
	User      *AuthorResponse `json:"user"`
	Content   string          `json:"content"`
	Image     string          `json:"image"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type AuthorResponse struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}
