package errx

import (
	"errors"
	"fmt"
)

// Type classifies errors into broad categories used for transport mapping
// and retry decisions.
type Type string

const (
	TypeInternal      Type = "INTERNAL"
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeExternal      Type = "EXTERNAL"
)

// Code identifies a registered error kind within a registry.
type Code struct {
	registry   string
	name       string
	errType    Type
	httpStatus int
	message    string
}

// Error is a structured error carrying a registered code, optional details
// and an optional underlying cause.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a single key/value pair to the error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple key/value pairs to the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// ToHTTPResponse returns the JSON-serializable body for HTTP error responses.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// Registry groups error codes under a common prefix, e.g. "RESUME".
type Registry struct {
	prefix string
}

// NewRegistry creates a registry whose codes are prefixed with the given name.
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register declares an error code with its type, HTTP status and default message.
func (r *Registry) Register(name string, t Type, httpStatus int, message string) Code {
	return Code{
		registry:   r.prefix,
		name:       name,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
}

// New creates an error from a registered code.
func (r *Registry) New(code Code) *Error {
	return &Error{
		Code:       code.registry + "_" + code.name,
		Type:       code.errType,
		Message:    code.message,
		HTTPStatus: code.httpStatus,
	}
}

// NewWithCause creates an error from a registered code wrapping an underlying cause.
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.cause = cause
	return e
}

// Wrap converts an arbitrary error into an *Error of the given type.
// If err is already an *Error it is returned unchanged.
func Wrap(err error, message string, t Type) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{
		Code:       string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: 500,
		cause:      err,
	}
}

// IsCode reports whether err carries the given registered code.
func IsCode(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code.registry+"_"+code.name
}
