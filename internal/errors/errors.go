package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the domain error taxonomy. Errors created through the
// builder are marked with one of these so callers can classify them with
// errors.Is without inspecting messages.
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrBusinessRule     = new(ErrCodeBusinessRule, "business rule violation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrInternal         = new(ErrCodeInternal, "internal error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:         http.StatusNotFound,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrBusinessRule:     http.StatusBadRequest,
		ErrPermissionDenied: http.StatusForbidden,
		ErrDatabase:         http.StatusInternalServerError,
		ErrInternal:         http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeBusinessRule     = "business_rule_error"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeDatabase         = "database_error"
	ErrCodeInternal         = "internal_error"
)

// DomainError carries a machine-readable code alongside the human message.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches on the error code so marked errors compare equal to sentinels.
func (e *DomainError) Is(target error) bool {
	if target == nil {
		return false
	}
	t, ok := target.(*DomainError)
	if !ok {
		return errors.Is(e.Err, target)
	}
	return e.Code == t.Code
}

func new(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Code returns the machine-readable code for a marked error, or
// ErrCodeInternal when the error carries no mark.
func Code(err error) string {
	for sentinel := range statusCodeMap {
		if errors.Is(err, sentinel) {
			return sentinel.(*DomainError).Code
		}
	}
	return ErrCodeInternal
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsBusinessRule(err error) bool {
	return errors.Is(err, ErrBusinessRule)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// HTTPStatusFromErr resolves a marked error to the status code the API layer
// should respond with.
func HTTPStatusFromErr(err error) int {
	for sentinel, status := range statusCodeMap {
		if errors.Is(err, sentinel) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// Hint returns the user-facing hint attached to an error, falling back to the
// error message when no hint was set.
func Hint(err error) string {
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		return hints[0]
	}
	return err.Error()
}
