package posts

import httperrors "github.com/dropDatabas3/postwall/internal/http/errors"

var (
	ErrUserMissing     = httperrors.Invalid("user id missing")
	ErrUserUnknown     = httperrors.Invalid("user id does not exist")
	ErrContentRequired = httperrors.Invalid("content is required")
	ErrUserImmutable   = httperrors.Invalid("user is immutable")
	ErrBadPattern      = httperrors.Invalid("q is not a valid pattern")
	ErrPostNotFound    = httperrors.ErrNotFound.WithMessage("post not found")
)

func fail(err error) func() error {
	return func() error { return err }
}
