package users

import (
	"fmt"

	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
)

var (
	ErrNameRequired       = httperrors.Invalid("name is required")
	ErrEmailRequired      = httperrors.Invalid("email is required")
	ErrEmailInvalid       = httperrors.Invalid("email format is invalid")
	ErrEmailTaken         = httperrors.Invalid("email already registered")
	ErrEmailImmutable     = httperrors.Invalid("email is immutable")
	ErrPasswordRequired   = httperrors.Invalid("password is required")
	ErrPasswordMismatch   = httperrors.Invalid("passwords do not match")
	ErrInvalidCredentials = httperrors.ErrUnauthorized.WithMessage("invalid credentials")
	ErrUserNotFound       = httperrors.ErrNotFound.WithMessage("user not found")
)

func errRequired(field string) *httperrors.AppError {
	return httperrors.Invalid(field + " is required")
}

func errTooShort(field string, n int) *httperrors.AppError {
	return httperrors.Invalid(fmt.Sprintf("%s must be at least %d characters", field, n))
}

func errTooLong(field string, n int) *httperrors.AppError {
	return httperrors.Invalid(fmt.Sprintf("%s must be at most %d bytes", field, n))
}
