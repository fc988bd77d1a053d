// Package server provides the HTTP REST API for the career compass backend.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/career-compass/internal/jobs"
	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/store"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return "User with this email already exists"
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "Invalid email or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct{}

func (e *ErrUserNotFound) Error() string {
	return "User not found"
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		emailTaken     *store.ErrEmailTaken
		emailExists    *ErrEmailAlreadyExists
		notFound       *store.ErrNotFound
		badField       *jobs.ErrUnsupportedField
		decodeFailed   *resume.DecodeError
		invalidCreds   *ErrInvalidCredentials
		userNotFound   *ErrUserNotFound
		validationFail *ErrValidation
	)

	switch {
	case errors.As(err, &emailExists), errors.As(err, &emailTaken):
		return http.StatusBadRequest
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validationFail), errors.As(err, &badField), errors.As(err, &decodeFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
