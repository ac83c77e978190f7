// Package apperrors holds the error taxonomy shared by the menu and order
// packages and its mapping onto HTTP responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError reports that a referenced id does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConfigurationError reports missing seed data the service cannot run without.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// InternalError wraps an unexpected data-access failure.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func NotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func Configuration(reason string) error {
	return &ConfigurationError{Reason: reason}
}

func Internal(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// IsNotFound is true only for a bare not-found, never for one that was
// escalated into an InternalError.
func IsNotFound(err error) bool {
	var internal *InternalError
	if errors.As(err, &internal) {
		return false
	}
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// HTTPStatus maps err onto the status code handlers respond with.
func HTTPStatus(err error) int {
	var (
		internal *InternalError
		cfg      *ConfigurationError
		nf       *NotFoundError
		invalid  *ValidationError
		conflict *ConflictError
	)
	switch {
	case errors.As(err, &internal), errors.As(err, &cfg):
		return http.StatusInternalServerError
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the error text safe to show a client. Server-side
// failures are reported opaquely.
func PublicMessage(err error) string {
	if HTTPStatus(err) >= http.StatusInternalServerError {
		return "Error occurred. Try to contact administrator."
	}
	return err.Error()
}
