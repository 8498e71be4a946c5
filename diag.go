// ABOUTME: Advisory diagnostics for discouraged-but-legal protocol values
// ABOUTME: Default handler logs a warning; callers may inject their own sink

package jsonrpc2

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Diagnostic describes a non-fatal advisory raised during validation, such
// as a fractional numeric id or a multi-sentence error message. Advisories
// never fail construction.
type Diagnostic struct {
	Message string
	Value   any
}

var (
	diagMu      sync.RWMutex
	diagHandler = defaultDiagnosticHandler
)

func defaultDiagnosticHandler(d Diagnostic) {
	log.Warn(d.Message, "value", d.Value)
}

// SetDiagnosticHandler replaces the advisory sink. Passing nil discards
// advisories. Safe to call concurrently with encode and decode calls.
func SetDiagnosticHandler(fn func(Diagnostic)) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if fn == nil {
		fn = func(Diagnostic) {}
	}
	diagHandler = fn
}

func emitDiagnostic(message string, value any) {
	diagMu.RLock()
	fn := diagHandler
	diagMu.RUnlock()
	fn(Diagnostic{Message: message, Value: value})
}
