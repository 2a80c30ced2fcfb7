package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError es el error que devuelven los services para fallas previstas.
// Message se muestra al cliente; Err es la causa y solo se loguea.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is compara por Code: una copia hecha con WithMessage o WithCause sigue
// matcheando con errors.Is contra el error predefinido de origen.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(status int, code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// FromError retorna err como *AppError. Cualquier otro error se convierte en
// ErrUnexpected con err como causa.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrUnexpected.WithCause(err)
}

// WithMessage retorna una copia con otro mensaje para el cliente.
func (e *AppError) WithMessage(msg string) *AppError {
	c := *e
	c.Message = msg
	return &c
}

// WithCause retorna una copia con err como causa.
func (e *AppError) WithCause(err error) *AppError {
	c := *e
	c.Err = err
	return &c
}

// ─────────────────────────────────────────────────────────────────────────────
// ERRORES PREDEFINIDOS
// ─────────────────────────────────────────────────────────────────────────────

// Services.
var (
	ErrValidationFailed = New(http.StatusBadRequest, "VALIDATION_FAILED", "validation failed")
	ErrUnauthorized     = New(http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
	ErrNotFound         = New(http.StatusNotFound, "NOT_FOUND", "resource not found")
	ErrUnexpected       = New(http.StatusInternalServerError, "UNEXPECTED", "internal server error")
)

// Routing.
var (
	ErrInvalidJSON      = New(http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
	ErrRouteNotFound    = New(http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")
	ErrMethodNotAllowed = New(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
)

// ─────────────────────────────────────────────────────────────────────────────
// HELPERS
// ─────────────────────────────────────────────────────────────────────────────

// Invalid es un atajo para ErrValidationFailed con mensaje por campo.
func Invalid(msg string) *AppError {
	return ErrValidationFailed.WithMessage(msg)
}

// Unexpected envuelve una falla ocurrida después de validar.
func Unexpected(err error) *AppError {
	return ErrUnexpected.WithCause(err)
}
