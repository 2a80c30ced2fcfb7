package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
)

type userRepo struct{ c *Connection }

func (r *userRepo) List(ctx context.Context) ([]repository.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	recs := make([]*userRecord, 0, len(r.c.users))
	for _, u := range r.c.users {
		recs = append(recs, u)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	out := make([]repository.User, 0, len(recs))
	for _, rec := range recs {
		u := rec.User
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	rec, ok := r.c.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := rec.User
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	id, ok := r.c.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.c.users[id].User
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, in repository.CreateUserInput) (*repository.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if _, taken := r.c.byEmail[in.Email]; taken {
		return nil, repository.ErrConflict
	}

	now := r.c.now()
	rec := &userRecord{
		User: repository.User{
			ID:           uuid.NewString(),
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: in.PasswordHash,
			Photo:        in.Photo,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		seq: r.c.nextSeq(),
	}
	r.c.users[rec.ID] = rec
	r.c.byEmail[rec.Email] = rec.ID

	u := rec.User
	return &u, nil
}

func (r *userRepo) Update(ctx context.Context, id string, in repository.UpdateUserInput) (*repository.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	rec, ok := r.c.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if in.Name != nil {
		rec.Name = *in.Name
	}
	if in.Photo != nil {
		rec.Photo = *in.Photo
	}
	rec.UpdatedAt = r.c.now()

	u := rec.User
	return &u, nil
}

func (r *userRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	rec, ok := r.c.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.PasswordHash = hash
	rec.UpdatedAt = r.c.now()
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) (*repository.User, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	rec, ok := r.c.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.c.users, id)
	delete(r.c.byEmail, rec.Email)

	u := rec.User
	return &u, nil
}

func (r *userRepo) DeleteAll(ctx context.Context) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	r.c.users = make(map[string]*userRecord)
	r.c.byEmail = make(map[string]string)
	return nil
}
