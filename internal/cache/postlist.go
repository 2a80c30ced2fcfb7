package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

const postGenKey = "posts:gen"

// PostList caches post listings per filter. Invalidate bumps a generation
// counter that is part of every key, so old entries are never read again
// and expire on their own. Concurrent misses for the same key share one
// load. A nil *PostList is valid and always loads.
type PostList struct {
	client Client
	ttl    time.Duration
	group  singleflight.Group
}

func NewPostList(client Client, ttl time.Duration) *PostList {
	if client == nil {
		return nil
	}
	return &PostList{client: client, ttl: ttl}
}

// Loader reads the listing from the store.
type Loader func(ctx context.Context) ([]repository.Post, error)

// List returns the cached listing for f, calling load on a miss. Cache
// failures are logged and fall through to load.
func (p *PostList) List(ctx context.Context, f repository.ListPostsFilter, load Loader) ([]repository.Post, error) {
	if p == nil {
		return load(ctx)
	}
	log := logger.From(ctx).With(logger.Component("cache.postlist"))

	gen, err := p.generation(ctx)
	if err != nil {
		log.Warn("post list cache unavailable", logger.Err(err))
		return load(ctx)
	}
	key := listKey(gen, f)

	raw, err := p.client.Get(ctx, key)
	switch {
	case err == nil:
		var posts []repository.Post
		if err := json.Unmarshal([]byte(raw), &posts); err == nil {
			return posts, nil
		}
		log.Warn("discarding undecodable post list entry")
	case !IsNotFound(err):
		log.Warn("post list cache read failed", logger.Err(err))
	}

	// The shared load must outlive the caller that started it; each caller
	// still gives up when its own context ends.
	loadCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan(key, func() (any, error) {
		posts, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if b, err := json.Marshal(posts); err == nil {
			if err := p.client.Set(loadCtx, key, string(b), p.ttl); err != nil {
				log.Warn("post list cache write failed", logger.Err(err))
			}
		}
		return posts, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]repository.Post), nil
	}
}

// Invalidate makes every cached listing unreachable.
func (p *PostList) Invalidate(ctx context.Context) error {
	if p == nil {
		return nil
	}
	_, err := p.client.Incr(ctx, postGenKey)
	return err
}

func (p *PostList) generation(ctx context.Context) (string, error) {
	gen, err := p.client.Get(ctx, postGenKey)
	if IsNotFound(err) {
		return "0", nil
	}
	return gen, err
}

func listKey(gen string, f repository.ListPostsFilter) string {
	sum := sha256.Sum256([]byte(f.ContentPattern))
	return fmt.Sprintf("posts:list:%s:%d:%t:%s", gen, f.Sort, f.HasPattern, hex.EncodeToString(sum[:8]))
}
