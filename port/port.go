// Package port implements the lifecycle state machine every continuous,
// event, and message port goes through: Created, then Mapped exactly once,
// then Connected or Unconnected depending on whether spatial negotiation
// found a peer, then Running once the scheduler starts ticking it, and
// finally Finalized.
package port

import "github.com/sarchlab/music/musicerr"

// State is one stage of a Port's lifecycle.
type State int

const (
	Created State = iota
	Mapped
	Connected
	Unconnected
	Running
	Finalized
)

// String names the state, for diagnostics.
func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Mapped:
		return "Mapped"
	case Connected:
		return "Connected"
	case Unconnected:
		return "Unconnected"
	case Running:
		return "Running"
	case Finalized:
		return "Finalized"
	default:
		return "Unknown"
	}
}

// Port tracks one port's own lifecycle state. It carries no buffer or
// routing data itself — those live in buffer, router, and connector —
// Port exists so every layer above it can ask "is this port actually
// usable right now" in one place.
type Port struct {
	name  string
	state State
}

// New creates a Port in the Created state.
func New(name string) *Port {
	return &Port{name: name, state: Created}
}

// Name returns the port's name.
func (p *Port) Name() string { return p.name }

// State returns the port's current lifecycle state.
func (p *Port) State() State { return p.state }

// Map transitions Created -> Mapped. Calling Map a second time is a
// programmer error, not a runtime condition a caller should need to
// check for — it panics rather than returning a ContractError, the same
// way a second call to a builder's terminal method would.
func (p *Port) Map() {
	if p.state != Created {
		panic(&musicerr.ContractError{Component: "port." + p.name, Reason: "Map called from state " + p.state.String()})
	}
	p.state = Mapped
}

// MarkConnected transitions Mapped -> Connected, once spatial negotiation
// has found at least one peer for this port.
func (p *Port) MarkConnected() error {
	if p.state != Mapped {
		return &musicerr.ContractError{Component: "port." + p.name, Reason: "MarkConnected called from state " + p.state.String()}
	}
	p.state = Connected
	return nil
}

// MarkUnconnected transitions Mapped -> Unconnected, when negotiation found
// no peer for this port at all.
func (p *Port) MarkUnconnected() error {
	if p.state != Mapped {
		return &musicerr.ContractError{Component: "port." + p.name, Reason: "MarkUnconnected called from state " + p.state.String()}
	}
	p.state = Unconnected
	return nil
}

// IsConnected reports whether the port found a peer. It tolerates being
// called from any state reached after Map, since it is a query rather
// than an operation that moves data.
func (p *Port) IsConnected() bool { return p.state == Connected || p.state == Running }

// Run transitions Connected or Unconnected -> Running, once the scheduler
// begins ticking this port's connectors.
func (p *Port) Run() error {
	if p.state != Connected && p.state != Unconnected {
		return &musicerr.ContractError{Component: "port." + p.name, Reason: "Run called from state " + p.state.String()}
	}
	p.state = Running
	return nil
}

// Finalize transitions Running -> Finalized. Finalizing a port that never
// ran (e.g. one left Unconnected for the whole job) is allowed too.
func (p *Port) Finalize() error {
	if p.state != Running && p.state != Connected && p.state != Unconnected {
		return &musicerr.ContractError{Component: "port." + p.name, Reason: "Finalize called from state " + p.state.String()}
	}
	p.state = Finalized
	return nil
}
