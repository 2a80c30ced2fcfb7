package pg

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
)

type postRepo struct{ pool *pgxpool.Pool }

const postColumns = `id::text, user_id::text, content, image, created_at, updated_at`

func scanPost(row pgx.Row) (*repository.Post, error) {
	var p repository.Post
	if err := row.Scan(&p.ID, &p.UserID, &p.Content, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// List joins the owner and projects only name and photo. A post whose owner
// was deleted comes back with a nil Author. The content pattern is matched
// with regexp after the join, not with the server's ~ operator.
func (r *postRepo) List(ctx context.Context, f repository.ListPostsFilter) ([]repository.Post, error) {
	order := "DESC"
	if f.Sort == repository.OldestFirst {
		order = "ASC"
	}
	var re *regexp.Regexp
	if f.HasPattern {
		var err error
		if re, err = regexp.Compile(f.ContentPattern); err != nil {
			return nil, fmt.Errorf("pg: %w: %v", repository.ErrInvalidPattern, err)
		}
	}

	q := `
		SELECT p.id::text, p.user_id::text, p.content, p.image, p.created_at, p.updated_at,
		       u.name, u.photo
		FROM posts p
		LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at ` + order + `, p.id ` + order

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, mapErr("list posts", err)
	}
	defer rows.Close()

	out := []repository.Post{}
	for rows.Next() {
		var (
			p           repository.Post
			name, photo *string
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.Image, &p.CreatedAt, &p.UpdatedAt, &name, &photo); err != nil {
			return nil, mapErr("list posts", err)
		}
		if re != nil && !re.MatchString(p.Content) {
			continue
		}
		if name != nil {
			p.Author = &repository.PostAuthor{Name: *name}
			if photo != nil {
				p.Author.Photo = *photo
			}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list posts", err)
	}
	return out, nil
}

func (r *postRepo) Create(ctx context.Context, in repository.CreatePostInput) (*repository.Post, error) {
	if !validID(in.UserID) {
		return nil, repository.ErrNotFound
	}
	const q = `
		INSERT INTO posts (user_id, content, image)
		VALUES ($1::uuid, $2, $3)
		RETURNING ` + postColumns
	p, err := scanPost(r.pool.QueryRow(ctx, q, in.UserID, in.Content, in.Image))
	if err != nil {
		return nil, mapErr("create post", err)
	}
	return p, nil
}

func (r *postRepo) Update(ctx context.Context, id string, in repository.UpdatePostInput) (*repository.Post, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE posts
		SET content = COALESCE($2, content), image = COALESCE($3, image), updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING ` + postColumns
	p, err := scanPost(r.pool.QueryRow(ctx, q, id, in.Content, in.Image))
	if err != nil {
		return nil, mapErr("update post", err)
	}
	return p, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) (*repository.Post, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	p, err := scanPost(r.pool.QueryRow(ctx, `DELETE FROM posts WHERE id = $1::uuid RETURNING `+postColumns, id))
	if err != nil {
		return nil, mapErr("delete post", err)
	}
	return p, nil
}

func (r *postRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM posts`); err != nil {
		return mapErr("delete posts", err)
	}
	return nil
}
