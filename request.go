// ABOUTME: Immutable JSON-RPC 2.0 request built through a staged builder
// ABOUTME: A request without an id is a notification and expects no response

package jsonrpc2

// Request is an immutable JSON-RPC 2.0 request: a method name, optional
// opaque params, and an optional id. Construct one through
// NewRequestBuilder or Notification; validation runs exactly once, when the
// value is built, so invalid input never produces a live Request.
type Request struct {
	method string
	params any
	id     ID
}

// RequestBuilder accumulates request fields. The builder itself is mutable
// and not safe for concurrent use; the Request it builds is.
type RequestBuilder struct {
	method string
	params any
	id     ID
	hasID  bool
}

// NewRequestBuilder returns an empty request builder.
func NewRequestBuilder() *RequestBuilder { return &RequestBuilder{} }

// Method sets the method name.
func (b *RequestBuilder) Method(method string) *RequestBuilder {
	b.method = method
	return b
}

// Params sets the opaque params payload. Nested serialization is delegated
// to encoding/json, so any marshalable value works; a json.RawMessage
// passes through untouched.
func (b *RequestBuilder) Params(params any) *RequestBuilder {
	b.params = params
	return b
}

// ID sets the request id. Setting NullID is allowed and, unlike never
// calling ID at all, runs id validation at build time.
func (b *RequestBuilder) ID(id ID) *RequestBuilder {
	b.id = id
	b.hasID = true
	return b
}

// Build validates the accumulated fields and returns the immutable request.
func (b *RequestBuilder) Build() (*Request, error) {
	if err := ValidateMethod(b.method); err != nil {
		return nil, err
	}
	var id ID
	if b.hasID {
		if err := ValidateID(b.id); err != nil {
			return nil, err
		}
		// An explicit null id carries no correlation value, so the built
		// request is a notification, same as one with no id at all.
		if b.id.kind != idNull {
			id = b.id
		}
	}
	return &Request{method: b.method, params: b.params, id: id}, nil
}

// Notification builds a request that never sets an id. No response is
// expected or permitted for it.
func Notification(method string, params any) (*Request, error) {
	return NewRequestBuilder().Method(method).Params(params).Build()
}

// Version returns the protocol version tag, always "2.0".
func (r *Request) Version() string { return Version }

// Method returns the method name.
func (r *Request) Method() string { return r.method }

// Params returns the opaque params payload and whether one was set.
func (r *Request) Params() (any, bool) { return r.params, r.params != nil }

// ID returns the request id and whether one is present.
func (r *Request) ID() (ID, bool) {
	return r.id, r.id.kind == idString || r.id.kind == idNumber
}

// IsNotification reports whether the request carries no id.
func (r *Request) IsNotification() bool {
	_, ok := r.ID()
	return !ok
}
