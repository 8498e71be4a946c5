// ABOUTME: Unit tests for protocol validation rules
// ABOUTME: Covers method names, ids, error codes, messages, and version checks

package jsonrpc2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDiagnostics routes advisories into a slice for the duration of the
// test and silences them afterwards.
func captureDiagnostics(t *testing.T) *[]Diagnostic {
	t.Helper()
	var got []Diagnostic
	SetDiagnosticHandler(func(d Diagnostic) { got = append(got, d) })
	t.Cleanup(func() { SetDiagnosticHandler(nil) })
	return &got
}

func requireRPCError(t *testing.T, err error, code int) *Error {
	t.Helper()
	require.Error(t, err)
	rpcErr, ok := err.(*Error)
	require.True(t, ok, "expected *Error, got %T", err)
	assert.Equal(t, code, rpcErr.Code())
	return rpcErr
}

func TestValidateMethod(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		wantErr bool
	}{
		{"simple name", "sum", false},
		{"dotted name", "session/new", false},
		{"rpc prefix not at start", "myrpc.foo", false},
		{"rpc without dot", "rpcfoo", false},
		{"empty", "", true},
		{"whitespace only", "   \t", true},
		{"reserved prefix", "rpc.discover", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMethod(tt.method)
			if tt.wantErr {
				requireRPCError(t, err, CodeInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMethod_ReservedMessage(t *testing.T) {
	err := ValidateMethod("rpc.internal")
	rpcErr := requireRPCError(t, err, CodeInvalidRequest)
	assert.Contains(t, rpcErr.Message(), "reserved")
}

func TestValidateID(t *testing.T) {
	diags := captureDiagnostics(t)

	assert.NoError(t, ValidateID(ID{}))
	assert.NoError(t, ValidateID(NullID()))
	assert.NoError(t, ValidateID(StringID("req-1")))
	assert.NoError(t, ValidateID(NumberID(7)))
	assert.Empty(t, *diags)
}

func TestValidateID_FractionalAdvisory(t *testing.T) {
	diags := captureDiagnostics(t)

	require.NoError(t, ValidateID(NumberID(1.5)))
	require.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "fractional")
	assert.Equal(t, 1.5, (*diags)[0].Value)
}

func TestValidateErrorCode(t *testing.T) {
	assert.NoError(t, ValidateErrorCode(0))
	assert.NoError(t, ValidateErrorCode(-32700))
	assert.NoError(t, ValidateErrorCode(1<<30))
}

func TestValidateMessage(t *testing.T) {
	diags := captureDiagnostics(t)

	assert.NoError(t, ValidateMessage("Method not found"))
	assert.NoError(t, ValidateMessage("One sentence."))
	assert.Empty(t, *diags)

	requireRPCError(t, ValidateMessage(""), CodeInternalError)
	requireRPCError(t, ValidateMessage("   "), CodeInternalError)
}

func TestValidateMessage_MultiSentenceAdvisory(t *testing.T) {
	diags := captureDiagnostics(t)

	require.NoError(t, ValidateMessage("First sentence. Second sentence."))
	require.Len(t, *diags, 1)
	assert.Contains(t, (*diags)[0].Message, "single sentence")
}

func TestValidateVersion(t *testing.T) {
	assert.NoError(t, ValidateVersion("2.0"))
	requireRPCError(t, ValidateVersion("1.0"), CodeInvalidRequest)
	requireRPCError(t, ValidateVersion(""), CodeInvalidRequest)
	requireRPCError(t, ValidateVersion("2.0 "), CodeInvalidRequest)
}
