// Package users holds the request and response bodies of the /user and
// /users endpoints.
package users

import (
	"encoding/json"
	"time"
)

// Pointer fields distinguish "absent" from "empty" so validation can report
// a missing field by name.

// SignUpRequest is the body of POST /user/sign_up and POST /user.
type SignUpRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
	// Photo is only honored by POST /user.
	Photo *string `json:"photo"`
}

type LogInRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdatePasswordRequest: Password is the current one.
type UpdatePasswordRequest struct {
	Password        *string `json:"password"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword *string `json:"confirmPassword"`
}

// UpdateUserRequest keeps Email raw: its mere presence, whatever the value,
// is rejected.
type UpdateUserRequest struct {
	Name  *string         `json:"name"`
	Photo *string         `json:"photo"`
	Email json.RawMessage `json:"email"`
}

// AuthResponse is returned by sign-up, log-in and password changes.
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Photo     string    `json:"photo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
