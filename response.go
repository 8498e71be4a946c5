// ABOUTME: Immutable JSON-RPC 2.0 response holding exactly one of result or error
// ABOUTME: Only the SuccessResponse and ErrorResponse factories construct one

package jsonrpc2

// Response is an immutable JSON-RPC 2.0 response. Exactly one of the
// result branch and the error branch is populated, never both and never
// neither. Construct one through SuccessResponse or ErrorResponse.
type Response struct {
	id      ID
	result  any
	err     *Error
	success bool
}

// newResponse enforces result/error mutual exclusivity for every
// construction path, including any added in the future.
func newResponse(id ID, result any, errObj *Error, success bool) (*Response, error) {
	if success && errObj != nil {
		return nil, &Error{code: CodeInternalError, message: "Internal Error: response cannot have both result and error"}
	}
	if !success && result != nil {
		return nil, &Error{code: CodeInternalError, message: "Internal Error: response cannot have both result and error"}
	}
	if !success && errObj == nil {
		return nil, &Error{code: CodeInternalError, message: "Internal Error: error response must have an error object"}
	}
	return &Response{id: id, result: result, err: errObj, success: success}, nil
}

// SuccessResponse creates a success response. A nil result is legal and is
// still written to the wire as an explicit JSON null.
func SuccessResponse(id ID, result any) (*Response, error) {
	return newResponse(id, result, nil, true)
}

// ErrorResponse creates an error response carrying errObj.
func ErrorResponse(id ID, errObj *Error) (*Response, error) {
	if errObj == nil {
		return nil, &Error{code: CodeInternalError, message: "Internal Error: error object cannot be nil"}
	}
	return newResponse(id, nil, errObj, false)
}

// Version returns the protocol version tag, always "2.0".
func (r *Response) Version() string { return Version }

// ID returns the correlating id. Responses always write the id key; an
// absent or null id encodes as JSON null.
func (r *Response) ID() ID { return r.id }

// Result returns the result payload and whether this is a success response
// carrying a non-nil result.
func (r *Response) Result() (any, bool) {
	return r.result, r.success && r.result != nil
}

// Error returns the error object and whether this is an error response.
func (r *Response) Error() (*Error, bool) { return r.err, !r.success }

// IsSuccess reports whether the response carries a result.
func (r *Response) IsSuccess() bool { return r.success }

// IsError reports whether the response carries an error object.
func (r *Response) IsError() bool { return !r.success }
