package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrNotFound            = errors.New("not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrBadRequest          = errors.New("malformed request")
	ErrInternal            = errors.New("internal server error")
)

type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// NotFound covers slugs and ids that resolve to no visible entity. Surfaced
// as a generic 404 to the end user.
func NotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NotAuthorized covers comment submissions from unapproved or unknown
// emails. The message never distinguishes "unknown" from "not yet approved"
// so the response cannot be used to probe the subscriber set.
func NotAuthorized(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrNotAuthorized,
		Details:    message,
	}
}

// ConstraintViolation covers singleton, cap and uniqueness breaches. Always
// surfaced to the administrator performing the write, never silently fixed.
func ConstraintViolation(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrConstraintViolation,
		Details:    message,
	}
}

func BadRequest(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func BadRequestWithField(message, field string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message), Field: field}
}

func Unauthorized(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func Internal(message string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsNotAuthorized(err error) bool {
	return errors.Is(err, ErrNotAuthorized)
}

func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}
