package enum

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes configuration errors.
type ErrorCode string

const (
	// ErrCodeNoAssociation indicates a test case declares no enumeration.
	ErrCodeNoAssociation ErrorCode = "NO_ASSOCIATION_DECLARED"

	// ErrCodeNotAnEnumeration indicates the declared target is not a backed enumeration.
	ErrCodeNotAnEnumeration ErrorCode = "NOT_AN_ENUMERATION"
)

var (
	// ErrNoAssociationDeclared matches ConfigErrors with ErrCodeNoAssociation.
	ErrNoAssociationDeclared = errors.New("no enumeration association declared")

	// ErrNotAnEnumeration matches ConfigErrors with ErrCodeNotAnEnumeration.
	ErrNotAnEnumeration = errors.New("not a backed enumeration")

	// ErrNotInRange is matched by errors a strict decode returns on no match.
	ErrNotInRange = errors.New("value not in enumeration range")
)

// ConfigError reports a misuse of the harness by a test case author.
// It is raised while resolving the association, before any check runs.
type ConfigError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Type is the Go type the error is about, if any.
	Type string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %s (type=%s)", e.Code, e.Message, e.Type)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches the sentinel for the error's code.
func (e *ConfigError) Is(target error) bool {
	switch e.Code {
	case ErrCodeNoAssociation:
		return target == ErrNoAssociationDeclared
	case ErrCodeNotAnEnumeration:
		return target == ErrNotAnEnumeration
	}
	return false
}

// ValueError is returned by a strict decode when no case has the value.
type ValueError struct {
	Enum  string
	Value any
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%v is not a valid backing value for enum %s", e.Value, e.Enum)
}

// Is reports whether target is ErrNotInRange.
func (e *ValueError) Is(target error) bool {
	return target == ErrNotInRange
}
