// Package pcrt is the support package imported by protoclass generated code. It holds the
// unknown-field and extension stores, decode helpers and the hashing primitives generated
// Hash methods combine.
package pcrt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEndGroup is returned when an end-group tag appears outside a group or
	// closes a group other than the one being decoded.
	ErrUnexpectedEndGroup = errors.New("pcrt: unexpected end-group tag")
	// ErrTruncatedGroup is returned when the input ends inside a group.
	ErrTruncatedGroup = errors.New("pcrt: group not terminated")
	// ErrInvalidFieldNumber is returned for a tag carrying field number zero or less.
	ErrInvalidFieldNumber = errors.New("pcrt: invalid field number")
	// ErrBuilderReused is the panic value of a builder touched after Build or BuildPartial.
	ErrBuilderReused = errors.New("pcrt: builder used after Build or BuildPartial")
	ErrDuplicateExtension = errors.New("pcrt: extension already registered")
)

// NotInitializedError is returned by Build when required fields are missing.
type NotInitializedError struct {
	Message string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("pcrt: %s is missing required fields", e.Message)
}
