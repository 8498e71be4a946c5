// ABOUTME: Protocol constraint checks for method names, ids, error codes and messages
// ABOUTME: Hard violations return *Error; discouraged-but-legal values emit advisories

package jsonrpc2

import (
	"math"
	"strings"
)

// ValidateMethod checks a request method name. Empty or whitespace-only
// names and names starting with the reserved "rpc." prefix fail with an
// Invalid Request error. The reserved check is anchored at the start of the
// string, so "myrpc.foo" passes.
func ValidateMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return &Error{code: CodeInvalidRequest, message: "Invalid Request: method name cannot be empty"}
	}
	if strings.HasPrefix(method, "rpc.") {
		return &Error{code: CodeInvalidRequest, message: "Invalid Request: method names starting with 'rpc.' are reserved"}
	}
	return nil
}

// ValidateID checks a request or response id. Absent, null, and string ids
// always pass. Numeric ids pass too, but a fractional value raises an
// advisory since the protocol discourages non-integer ids. Other id shapes
// cannot be represented by ID at all; the codec rejects them at the wire
// boundary.
func ValidateID(id ID) error {
	if n, ok := id.NumberValue(); ok {
		if math.Abs(n-math.Floor(n)) > 1e-10 {
			emitDiagnostic("JSON-RPC id contains fractional parts, which is discouraged", n)
		}
	}
	return nil
}

// ValidateErrorCode checks an error code. Any integer is valid today; the
// hook exists so future range rules stay a construction-time concern.
func ValidateErrorCode(code int) error {
	return nil
}

// ValidateMessage checks an error message. Empty or whitespace-only
// messages fail with an Internal Error: a malformed outbound error object
// is the server's own bug, not a client protocol violation. A message that
// looks like more than one sentence raises an advisory.
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return &Error{code: CodeInternalError, message: "Internal Error: error message cannot be empty"}
	}
	sentences := 0
	for _, r := range trimmed {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences > 1 {
		emitDiagnostic("Error message should be a single sentence", message)
	}
	return nil
}

// ValidateVersion checks the jsonrpc version tag.
func ValidateVersion(version string) error {
	if version != Version {
		return &Error{code: CodeInvalidRequest, message: "Invalid Request: jsonrpc version must be '2.0'"}
	}
	return nil
}
