package repository

import (
	"context"
	"time"
)

// User is a registered member. PasswordHash is empty when the read did not
// select it (List never does).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Photo        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
	Photo        string
}

// UpdateUserInput carries the profile fields a member may change. A nil
// field is left as stored.
type UpdateUserInput struct {
	Name  *string
	Photo *string
}

type UserRepository interface {
	// List returns every user without the password hash, oldest first.
	List(ctx context.Context) ([]User, error)

	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail matches the normalized address exactly.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Create returns ErrConflict when the email is taken.
	Create(ctx context.Context, in CreateUserInput) (*User, error)

	// Update applies in and returns the stored result.
	Update(ctx context.Context, id string, in UpdateUserInput) (*User, error)

	UpdatePasswordHash(ctx context.Context, id, hash string) error

	// Delete removes the user and returns what was removed. Posts that
	// reference the user are left in place.
	Delete(ctx context.Context, id string) (*User, error)

	DeleteAll(ctx context.Context) error
}
