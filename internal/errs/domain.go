package errs

import (
	"fmt"
	"strings"
)

// DuplicateResourceError is returned when creating a resource would violate
// a uniqueness rule, e.g. a second employee with the same email.
//
// It is a definitive rejection and must not be retried.
type DuplicateResourceError struct {
	Resource string
	Field    string
	Value    string
}

// NewDuplicateResourceError builds a DuplicateResourceError.
func NewDuplicateResourceError(resource, field, value string) *DuplicateResourceError {
	return &DuplicateResourceError{
		Resource: resource,
		Field:    field,
		Value:    value,
	}
}

func (e *DuplicateResourceError) Error() string {
	return fmt.Sprintf("%s already exists with given %s: %s", e.Resource, e.Field, e.Value)
}

// Code returns the machine-readable code, e.g. "EMPLOYEE_ALREADY_EXISTS".
func (e *DuplicateResourceError) Code() string {
	return MakeUpperCaseWithUnderscores(e.Resource) + "_ALREADY_EXISTS"
}

// HTTPError converts the domain error into a 409 Conflict response.
func (e *DuplicateResourceError) HTTPError() *HTTPError {
	code := e.Code()
	message := fmt.Sprintf("%s already exists with given %s", e.Resource, strings.ToLower(e.Field))
	return NewConflictError(message, true, &code)
}
