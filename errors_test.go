// ABOUTME: Unit tests for error construction and standard error factories
// ABOUTME: Covers validation, server error range, and code classification

package jsonrpc2

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	e, err := NewError(-32601, "Method not found")
	require.NoError(t, err)
	assert.Equal(t, -32601, e.Code())
	assert.Equal(t, "Method not found", e.Message())

	_, present := e.Data()
	assert.False(t, present)
}

func TestNewError_EmptyMessage(t *testing.T) {
	_, err := NewError(-32000, "")
	requireRPCError(t, err, CodeInternalError)

	_, err = NewError(-32000, "  \t ")
	requireRPCError(t, err, CodeInternalError)
}

func TestNewErrorWithData(t *testing.T) {
	e, err := NewErrorWithData(-32001, "Backend unavailable", map[string]string{"region": "us-east"})
	require.NoError(t, err)

	data, present := e.Data()
	require.True(t, present)
	assert.Equal(t, map[string]string{"region": "us-east"}, data)
}

func TestError_ImplementsError(t *testing.T) {
	e := MethodNotFound(nil)
	var asErr error = e
	assert.Equal(t, "Method not found", asErr.Error())
	assert.Equal(t, "Method not found", fmt.Sprintf("%v", asErr))
}

func TestStandardFactories(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		code    int
		message string
	}{
		{"parse error", ParseError(nil), -32700, "Parse error"},
		{"invalid request", InvalidRequest(nil), -32600, "Invalid Request"},
		{"method not found", MethodNotFound(nil), -32601, "Method not found"},
		{"invalid params", InvalidParams(nil), -32602, "Invalid params"},
		{"internal error", InternalError(nil), -32603, "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code())
			assert.Equal(t, tt.message, tt.err.Message())
			_, present := tt.err.Data()
			assert.False(t, present)
		})
	}
}

func TestStandardFactories_WithData(t *testing.T) {
	e := InvalidRequest("Missing 'method' field")
	data, present := e.Data()
	require.True(t, present)
	assert.Equal(t, "Missing 'method' field", data)
}

func TestServerError(t *testing.T) {
	e, err := ServerError(-32050, "Upstream timeout", nil)
	require.NoError(t, err)
	assert.Equal(t, -32050, e.Code())
	assert.Equal(t, "Upstream timeout", e.Message())
}

func TestServerError_OutOfRange(t *testing.T) {
	for _, code := range []int{-32100, -31999, 0, -32700} {
		_, err := ServerError(code, "x", nil)
		rpcErr := requireRPCError(t, err, CodeInternalError)
		assert.Contains(t, rpcErr.Message(), "-32099")
		assert.Contains(t, rpcErr.Message(), "-32000")
	}
}

func TestServerError_RangeBoundaries(t *testing.T) {
	_, err := ServerError(-32099, "Lower bound", nil)
	assert.NoError(t, err)

	_, err = ServerError(-32000, "Upper bound", nil)
	assert.NoError(t, err)
}

func TestServerError_InvalidMessage(t *testing.T) {
	_, err := ServerError(-32050, "", nil)
	requireRPCError(t, err, CodeInternalError)
}

func TestIsReservedCode(t *testing.T) {
	assert.True(t, IsReservedCode(-32768))
	assert.True(t, IsReservedCode(-32000))
	assert.True(t, IsReservedCode(-32700))
	assert.False(t, IsReservedCode(-32769))
	assert.False(t, IsReservedCode(-31999))
	assert.False(t, IsReservedCode(0))
}

func TestIsServerErrorCode(t *testing.T) {
	assert.True(t, IsServerErrorCode(-32099))
	assert.True(t, IsServerErrorCode(-32000))
	assert.True(t, IsServerErrorCode(-32050))
	assert.False(t, IsServerErrorCode(-32100))
	assert.False(t, IsServerErrorCode(-31999))
	assert.False(t, IsServerErrorCode(-32700))
}
