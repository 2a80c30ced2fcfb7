// Package posts implements the post workflows: filtered listing, creation,
// edits and deletion.
package posts

import (
	"github.com/dropDatabas3/postwall/internal/cache"
	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/metrics"
)

type Deps struct {
	Posts   repository.PostRepository
	Users   repository.UserRepository
	Cache   *cache.PostList  // nil disables listing cache
	Metrics *metrics.Metrics // nil disables counters
}

type Services struct {
	Posts PostService
}

func NewServices(d Deps) Services {
	return Services{Posts: NewPostService(d)}
}
