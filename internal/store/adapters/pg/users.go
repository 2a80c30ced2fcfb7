package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
)

type userRepo struct{ pool *pgxpool.Pool }

// userColumns never includes password_hash; only the credential lookups
// select it explicitly.
const userColumns = `id::text, name, email, photo, created_at, updated_at`

func scanUser(row pgx.Row, extra ...any) (*repository.User, error) {
	var u repository.User
	dest := append([]any{&u.ID, &u.Name, &u.Email, &u.Photo, &u.CreatedAt, &u.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]repository.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, mapErr("list users", err)
	}
	defer rows.Close()

	out := []repository.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapErr("list users", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list users", err)
	}
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	var hash string
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE id = $1::uuid`, id)
	u, err := scanUser(row, &hash)
	if err != nil {
		return nil, mapErr("get user", err)
	}
	u.PasswordHash = hash
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var hash string
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE email = $1`, email)
	u, err := scanUser(row, &hash)
	if err != nil {
		return nil, mapErr("get user by email", err)
	}
	u.PasswordHash = hash
	return u, nil
}

func (r *userRepo) Create(ctx context.Context, in repository.CreateUserInput) (*repository.User, error) {
	const q = `
		INSERT INTO users (name, email, password_hash, photo)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	u, err := scanUser(r.pool.QueryRow(ctx, q, in.Name, in.Email, in.PasswordHash, in.Photo))
	if err != nil {
		return nil, mapErr("create user", err)
	}
	return u, nil
}

func (r *userRepo) Update(ctx context.Context, id string, in repository.UpdateUserInput) (*repository.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	const q = `
		UPDATE users
		SET name = COALESCE($2, name), photo = COALESCE($3, photo), updated_at = NOW()
		WHERE id = $1::uuid
		RETURNING ` + userColumns
	u, err := scanUser(r.pool.QueryRow(ctx, q, id, in.Name, in.Photo))
	if err != nil {
		return nil, mapErr("update user", err)
	}
	return u, nil
}

func (r *userRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	tag, err := r.pool.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1::uuid`, id, hash)
	if err != nil {
		return mapErr("update password", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (*repository.User, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	u, err := scanUser(r.pool.QueryRow(ctx, `DELETE FROM users WHERE id = $1::uuid RETURNING `+userColumns, id))
	if err != nil {
		return nil, mapErr("delete user", err)
	}
	return u, nil
}

func (r *userRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users`); err != nil {
		return mapErr("delete users", err)
	}
	return nil
}
