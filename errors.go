// ABOUTME: JSON-RPC 2.0 error values plus standard error codes and factories
// ABOUTME: Every validation and decode failure surfaces as an *Error

package jsonrpc2

import "fmt"

// Version is the protocol version tag carried by every message.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error code ranges defined by the protocol. Codes in the reserved range
// belong to the specification; the server error sub-range is free for
// implementation-defined errors.
const (
	ServerErrorMin   = -32099
	ServerErrorMax   = -32000
	ReservedErrorMin = -32768
	ReservedErrorMax = -32000
)

// Standard error messages from the JSON-RPC 2.0 specification.
const (
	parseErrorMsg     = "Parse error"
	invalidRequestMsg = "Invalid Request"
	methodNotFoundMsg = "Method not found"
	invalidParamsMsg  = "Invalid params"
	internalErrorMsg  = "Internal error"
)

// Error is an immutable JSON-RPC 2.0 error object: an integer code, a
// one-sentence message, and optional data of any shape. The data payload is
// carried opaquely and never interpreted.
//
// Error implements the error interface, so failed construction and decoding
// return an *Error that callers can turn straight into an error response.
type Error struct {
	code    int
	message string
	data    any
}

// NewError creates a validated error with no data. The message must not be
// empty or whitespace-only.
func NewError(code int, message string) (*Error, error) {
	return NewErrorWithData(code, message, nil)
}

// NewErrorWithData creates a validated error carrying additional data.
func NewErrorWithData(code int, message string, data any) (*Error, error) {
	if err := ValidateErrorCode(code); err != nil {
		return nil, err
	}
	if err := ValidateMessage(message); err != nil {
		return nil, err
	}
	return &Error{code: code, message: message, data: data}, nil
}

// Code returns the error code.
func (e *Error) Code() int { return e.code }

// Message returns the error message.
func (e *Error) Message() string { return e.message }

// Data returns the optional data payload and whether one is present.
func (e *Error) Data() (any, bool) { return e.data, e.data != nil }

// Error implements the error interface.
func (e *Error) Error() string { return e.message }

// ParseError builds a -32700 error for syntactically invalid input. data
// may be nil.
func ParseError(data any) *Error {
	return &Error{code: CodeParseError, message: parseErrorMsg, data: data}
}

// InvalidRequest builds a -32600 error for input that is not a valid
// request object. data may be nil.
func InvalidRequest(data any) *Error {
	return &Error{code: CodeInvalidRequest, message: invalidRequestMsg, data: data}
}

// MethodNotFound builds a -32601 error. data may be nil.
func MethodNotFound(data any) *Error {
	return &Error{code: CodeMethodNotFound, message: methodNotFoundMsg, data: data}
}

// InvalidParams builds a -32602 error. data may be nil.
func InvalidParams(data any) *Error {
	return &Error{code: CodeInvalidParams, message: invalidParamsMsg, data: data}
}

// InternalError builds a -32603 error. data may be nil.
func InternalError(data any) *Error {
	return &Error{code: CodeInternalError, message: internalErrorMsg, data: data}
}

// ServerError builds an implementation-defined error. The code must fall in
// the server error range [-32099, -32000]; anything else fails with an
// Internal Error citing the valid range. data may be nil.
func ServerError(code int, message string, data any) (*Error, error) {
	if !IsServerErrorCode(code) {
		return nil, &Error{
			code:    CodeInternalError,
			message: fmt.Sprintf("Server error code must be in range %d to %d", ServerErrorMin, ServerErrorMax),
		}
	}
	return NewErrorWithData(code, message, data)
}

// IsReservedCode reports whether code falls in the range the protocol
// reserves for predefined errors (-32768 to -32000).
func IsReservedCode(code int) bool {
	return code >= ReservedErrorMin && code <= ReservedErrorMax
}

// IsServerErrorCode reports whether code falls in the implementation-defined
// server error range (-32099 to -32000).
func IsServerErrorCode(code int) bool {
	return code >= ServerErrorMin && code <= ServerErrorMax
}
