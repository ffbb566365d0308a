// Package entity holds the value types a hit is built from: who is visiting,
// in which session, on which page, and what happened there.
package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every error returned from a setter or
	// Validate method in this package.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCookie is returned when a serialized session cannot be read.
	ErrInvalidCookie = errors.New("invalid session cookie")
)

// ValidationError describes a rejected field value.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(entity, field, reason string) error {
	return &ValidationError{Entity: entity, Field: field, Reason: reason}
}
