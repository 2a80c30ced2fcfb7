package repository

import "errors"

var (
	// ErrNotFound means no entity matches the id or filter.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness constraint rejected the write.
	ErrConflict = errors.New("conflict")

	// ErrInvalidPattern means ListPostsFilter.ContentPattern does not compile.
	ErrInvalidPattern = errors.New("invalid content pattern")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidPattern)
}
