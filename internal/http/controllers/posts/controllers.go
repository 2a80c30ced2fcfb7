// Package posts exposes the /post and /posts endpoints.
package posts

import svc "github.com/dropDatabas3/postwall/internal/http/services/posts"

type Controllers struct {
	Posts *PostsController
}

func NewControllers(s svc.Services) *Controllers {
	return &Controllers{Posts: NewPostsController(s.Posts)}
}
