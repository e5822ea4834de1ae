// Package logging is the app's failure and lifecycle log sink. Pages and
// repositories forward a Failure's kind and message here; the sink does
// not participate in error propagation, which travels as Result values.
package logging

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/hanimtuba/medication-tracking/pkg/result"
)

// Sink records failures and lifecycle events.
type Sink struct {
	logger *log.Logger
}

// NewSink creates a sink writing structured logs to stderr.
func NewSink() *Sink {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.InfoLevel)
	return &Sink{logger: logger}
}

// NewSinkWithLogger wraps an existing logger, for tests and custom setups.
func NewSinkWithLogger(logger *log.Logger) *Sink {
	return &Sink{logger: logger}
}

// SetDebug lowers the level to debug.
func (s *Sink) SetDebug() {
	s.logger.SetLevel(log.DebugLevel)
}

// Failure records a classified failure observed at op.
func (s *Sink) Failure(op string, f result.Failure) {
	s.logger.Error("operation failed", "op", op, "kind", f.Kind().String(), "message", f.Message())
}

// Event records a lifecycle event with key-value context.
func (s *Sink) Event(op string, kv ...any) {
	s.logger.Info(op, kv...)
}

// Debug records diagnostic detail.
func (s *Sink) Debug(op string, kv ...any) {
	s.logger.Debug(op, kv...)
}

var defaultSink = NewSink()

// Default returns the process-wide sink.
func Default() *Sink { return defaultSink }

// SetDefault replaces the process-wide sink. Intended for the composition
// root and tests.
func SetDefault(s *Sink) {
	if s != nil {
		defaultSink = s
	}
}
