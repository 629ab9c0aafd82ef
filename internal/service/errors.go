// Package service holds the clinic's business operations: account
// registration and login, treatment records and appointments.
package service

import (
	"errors"
	"fmt"

	"github.com/sebasr/clinic-service/internal/validation"
)

var (
	// ErrValidation marks caller input that is malformed or incomplete
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned by Login when no account has the identity number
	ErrNotFound = errors.New("account not found")
	// ErrInvalidCredential is returned by Login when the password does not match
	ErrInvalidCredential = errors.New("incorrect password")
	// ErrPersistence marks any failure reported by the store
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError lists the fields that were missing or invalid
type ValidationError struct {
	Fields  []string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) hold for every ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newValidationError converts a validation.Struct failure
func newValidationError(err error) error {
	var fe *validation.FieldErrors
	if errors.As(err, &fe) {
		return &ValidationError{Fields: fe.Fields, Message: fe.Error(), Err: err}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}

func missingField(field string) error {
	return &ValidationError{Fields: []string{field}, Message: "missing or invalid fields: " + field}
}

// persistenceError keeps both the kind and the store error matchable
func persistenceError(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
