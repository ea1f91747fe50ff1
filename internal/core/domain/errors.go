package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the coarse classification every failure in the core maps to.
// The REST adapter translates each kind to one stable outward signal.
type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindValidation  ErrorKind = "validation_conflict"
	KindUnavailable ErrorKind = "unavailable"
)

// DomainError carries a kind, the entity it concerns, and the underlying cause.
type DomainError struct {
	Kind   ErrorKind
	Entity string
	Msg    string
	Cause  error
}

func (e *DomainError) Error() string {
	base := string(e.Kind)
	if e.Entity != "" {
		base = fmt.Sprintf("%s: %s", e.Entity, e.Kind)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Cause != nil {
		base += fmt.Sprintf(": %v", e.Cause)
	}
	return base
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NotFound reports an id-scoped read/update/delete with no matching row.
func NotFound(entity string) error {
	return &DomainError{Kind: KindNotFound, Entity: entity, Msg: "not found"}
}

// Conflict reports a delete refused because dependent rows still exist.
func Conflict(entity, msg string) error {
	return &DomainError{Kind: KindConflict, Entity: entity, Msg: msg}
}

// ValidationConflict reports a store-level constraint violation on write.
func ValidationConflict(msg string, cause error) error {
	return &DomainError{Kind: KindValidation, Msg: msg, Cause: cause}
}

// Unavailable reports that the store could not be reached.
func Unavailable(cause error) error {
	return &DomainError{Kind: KindUnavailable, Msg: "storage unavailable", Cause: cause}
}

// IsKind lets callers classify errors without depending on adapter packages.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
