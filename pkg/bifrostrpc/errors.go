package bifrostrpc

import (
	"encoding/json"
	"fmt"
)

// Error represents a JSON-RPC 2.0 error object reported by the node. It is
// surfaced to the caller verbatim and implements the error interface.
type Error struct {
	Code    int64           `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ValidationError is returned by client operations when a required parameter
// is missing, before any network I/O happens. Param names the first field
// that failed the check; an empty Param means the whole parameter object was
// omitted.
type ValidationError struct {
	Param string
}

// ErrMissingParams is returned when an operation requiring a parameter
// object is invoked without one.
var ErrMissingParams = &ValidationError{}

// NewError is an Error constructor that takes Error contents from its
// parameters.
func NewError(code int64, message string, data json.RawMessage) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Data) == 0 {
		return fmt.Sprintf("%s (%d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%d) - %s", e.Message, e.Code, e.Data)
}

// NewMissingParamError creates a ValidationError naming the missing field.
func NewMissingParamError(name string) *ValidationError {
	return &ValidationError{Param: name}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Param == "" {
		return "A parameter object must be specified"
	}
	return fmt.Sprintf("A %s must be specified", e.Param)
}
