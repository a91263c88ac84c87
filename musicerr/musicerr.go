// Package musicerr defines the error taxonomy shared across the
// co-simulation runtime, and the fail-fast abort path every component
// uses once an error crosses its own boundary. There is no per-message
// recovery: once a rank hits one of these conditions, the run is done.
package musicerr

import (
	"fmt"
	"log/slog"

	"github.com/tebeka/atexit"
)

// ConfigurationError reports a malformed or missing configuration value —
// an unparsable port width, an unknown backend name, a file that does not
// exist.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("musicerr: configuration %q: %s", e.Key, e.Reason)
}

// ContractError reports a caller violating a package's documented calling
// convention — an illegal port lifecycle transition, publishing a port
// twice, ticking a Runtime after Finalize.
type ContractError struct {
	Component string
	Reason    string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("musicerr: contract violation in %s: %s", e.Component, e.Reason)
}

// BufferOverflowError reports a block written to a buffer exceeding its
// capacity.
type BufferOverflowError struct {
	Buffer   string
	Written  int
	Capacity int
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("musicerr: %s overflow: wrote %d bytes, capacity %d", e.Buffer, e.Written, e.Capacity)
}

// UnderrunError reports a consumer reading from an empty buffer: the
// producer side fell behind the schedule that spatial negotiation
// assumed.
type UnderrunError struct {
	Buffer string
	Tick   int
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("musicerr: %s underrun at tick %d", e.Buffer, e.Tick)
}

// NegotiationError reports an inconsistency discovered while intersecting
// two ranks' index maps — a span mismatch, a port width disagreement, an
// unresolvable wildcard.
type NegotiationError struct {
	Port   string
	Reason string
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("musicerr: negotiation failed for port %q: %s", e.Port, e.Reason)
}

// SubstrateError wraps a failure surfaced by the underlying transport —
// a connection that could not be established, a send that failed.
type SubstrateError struct {
	Reason string
	Cause  error
}

func (e *SubstrateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("musicerr: substrate error: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("musicerr: substrate error: %s", e.Reason)
}

func (e *SubstrateError) Unwrap() error { return e.Cause }

// Abort logs err at the error level and terminates the process with a
// non-zero exit code. Callers reach for this, rather than propagating err
// further up, once they are certain the condition is unrecoverable.
func Abort(err error) {
	slog.Error("aborting co-simulation run", "error", err)
	atexit.Exit(1)
}
