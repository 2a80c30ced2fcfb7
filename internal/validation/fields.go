package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/mcnijman/go-emailaddress"
)

// ErrEmpty is returned by RequireTrimmedNonEmpty for absent or blank input.
var ErrEmpty = errors.New("validation: empty value")

// RequireTrimmedNonEmpty trims v and fails when v is nil or nothing is left.
func RequireTrimmedNonEmpty(v *string) (string, error) {
	if v == nil {
		return "", ErrEmpty
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return "", ErrEmpty
	}
	return s, nil
}

// IsValidEmailSyntax reports whether s is a syntactically valid address.
// Surrounding whitespace is not tolerated; trim before calling.
func IsValidEmailSyntax(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}
	addr, err := emailaddress.Parse(s)
	if err != nil {
		return false
	}
	return addr.LocalPart != "" && strings.Contains(strings.Trim(addr.Domain, "."), ".")
}

// HasMinLength counts runes, not bytes.
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// Provided reports whether an optional raw field was supplied at all.
func Provided(v *string) bool {
	return v != nil && *v != ""
}
