package memory

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/google/uuid"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
)

type postRepo struct{ c *Connection }

func (r *postRepo) List(ctx context.Context, f repository.ListPostsFilter) ([]repository.Post, error) {
	var re *regexp.Regexp
	if f.HasPattern {
		var err error
		if re, err = regexp.Compile(f.ContentPattern); err != nil {
			return nil, fmt.Errorf("memory: %w: %v", repository.ErrInvalidPattern, err)
		}
	}

	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	recs := make([]*postRecord, 0, len(r.c.posts))
	for _, p := range r.c.posts {
		if re != nil && !re.MatchString(p.Content) {
			continue
		}
		recs = append(recs, p)
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if f.Sort == repository.OldestFirst {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if f.Sort == repository.OldestFirst {
			return a.seq < b.seq
		}
		return a.seq > b.seq
	})

	out := make([]repository.Post, 0, len(recs))
	for _, rec := range recs {
		p := rec.Post
		if u, ok := r.c.users[p.UserID]; ok {
			p.Author = &repository.PostAuthor{Name: u.Name, Photo: u.Photo}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *postRepo) Create(ctx context.Context, in repository.CreatePostInput) (*repository.Post, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	now := r.c.now()
	rec := &postRecord{
		Post: repository.Post{
			ID:        uuid.NewString(),
			UserID:    in.UserID,
			Content:   in.Content,
			Image:     in.Image,
			CreatedAt: now,
			UpdatedAt: now,
		},
		seq: r.c.nextSeq(),
	}
	r.c.posts[rec.ID] = rec

	p := rec.Post
	return &p, nil
}

func (r *postRepo) Update(ctx context.Context, id string, in repository.UpdatePostInput) (*repository.Post, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	rec, ok := r.c.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Content != nil {
		rec.Content = *in.Content
	}
	if in.Image != nil {
		rec.Image = *in.Image
	}
	rec.UpdatedAt = r.c.now()

	p := rec.Post
	return &p, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) (*repository.Post, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	rec, ok := r.c.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.c.posts, id)

	p := rec.Post
	return &p, nil
}

func (r *postRepo) DeleteAll(ctx context.Context) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.posts = make(map[string]*postRecord)
	return nil
}
