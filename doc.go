// Package jsonrpc2 models the JSON-RPC 2.0 message envelope: requests,
// responses, and error objects, with strict construction-time validation and
// a structural JSON codec.
//
// The package is a data-model library, not a client or server. It defines
// immutable message values, enforces protocol invariants when they are
// built, and converts them to and from wire-format JSON. Transports and
// method dispatch are left to the caller.
//
// Requests are built through a staged builder or the Notification shorthand:
//
//	req, err := jsonrpc2.NewRequestBuilder().
//		Method("subtract").
//		Params([]int{42, 23}).
//		ID(jsonrpc2.NumberID(1)).
//		Build()
//
// Responses come from exactly two factories, SuccessResponse and
// ErrorResponse, which enforce that a response carries either a result or an
// error object, never both. Payload fields (params, result, error data) are
// opaque: the package stores and forwards them, delegating their nested
// (de)serialization to encoding/json. A json.RawMessage payload passes
// through untouched.
//
// Every validation or decode failure is an *Error carrying a protocol error
// code, so a failed construction translates directly into an error response.
// Discouraged-but-legal values (fractional numeric ids, multi-sentence error
// messages) raise non-fatal advisories through an injectable handler; see
// SetDiagnosticHandler.
package jsonrpc2
