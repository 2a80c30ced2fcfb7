package users

import (
	"context"
	"strings"

	"github.com/dropDatabas3/postwall/internal/domain/repository"
	dto "github.com/dropDatabas3/postwall/internal/http/dto/users"
	"github.com/dropDatabas3/postwall/internal/validation"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

func fail(err error) func() error {
	return func() error { return err }
}

// memberFields receives the normalized name and email of a sign-up.
type memberFields struct {
	name  string
	email string
}

// signUpChain checks, in order: name, email presence, email syntax, email
// availability, then the password rules.
func signUpChain(users repository.UserRepository, in dto.SignUpRequest, out *memberFields) validation.Chain {
	email := normalizeEmail(in.Email)

	c := validation.Chain{
		validation.Present(&out.name, in.Name, fail(ErrNameRequired)),
		validation.Present(&out.email, email, fail(ErrEmailRequired)),
		validation.When(func() bool { return validation.IsValidEmailSyntax(out.email) }, fail(ErrEmailInvalid)),
		validation.WhenCtx(func(ctx context.Context) (bool, error) {
			_, err := users.GetByEmail(ctx, out.email)
			if repository.IsNotFound(err) {
				return true, nil
			}
			return false, err
		}, fail(ErrEmailTaken)),
	}
	return append(c, passwordRules("password", in.Password, in.ConfirmPassword)...)
}

// passwordRules: present, long enough, confirmed, and short enough for
// bcrypt. field names the password in messages.
func passwordRules(field string, pw, confirm *string) validation.Chain {
	return validation.Chain{
		validation.When(func() bool { return validation.Provided(pw) }, fail(errRequired(field))),
		validation.When(func() bool { return validation.HasMinLength(*pw, minPasswordLength) }, fail(errTooShort(field, minPasswordLength))),
		validation.When(func() bool { return validation.Provided(confirm) }, fail(errRequired("confirmPassword"))),
		validation.When(func() bool { return *pw == *confirm }, fail(ErrPasswordMismatch)),
		validation.When(func() bool { return len(*pw) <= maxPasswordBytes }, fail(errTooLong(field, maxPasswordBytes))),
	}
}

func normalizeEmail(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	return &s
}
