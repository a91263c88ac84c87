// Package router implements the event router: given an emitted (time,
// global_id) on the producer side, it enqueues a copy into every output
// buffer whose routing interval contains global_id, translating the id by
// the interval's offset; on the consumer side the same structure
// dispatches to handlers instead of buffers.
//
// Two backends share the Router interface: Table trades memory for O(1)
// dispatch and is mandatory for collective ports, and Tree (a static
// interval tree) trades a log(n) lookup for memory proportional to the
// number of intervals rather than their total span.
package router

import (
	"fmt"

	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/wire"
)

// EventHandler receives a translated (time, id) pair. Whether id is the
// global or the rank-local index is determined by the offset the
// InputRoutingData was constructed with — offset 0 for the global-index
// variant, the interval's Begin minus its LocalBase for the local-index
// variant.
type EventHandler func(t float64, id int)

// RoutingData is the tagged union of OutputRoutingData and
// InputRoutingData: either route to a FIBO (producer side) or to a
// handler (consumer side).
type RoutingData interface {
	// Process delivers an event whose global id has already been
	// confirmed to fall in this RoutingData's interval. id is still the
	// untranslated global index; Process applies its own offset.
	Process(t float64, id int)
}

// OutputRoutingData inserts the translated event into a producer-side
// FIBO.
type OutputRoutingData struct {
	Offset int
	Buffer *buffer.FIBO
}

// NewOutputRoutingData builds an OutputRoutingData for the given routing
// interval and destination buffer; the offset is Begin minus the
// interval's LocalBase, so id-Offset is the id in the interval's local
// numbering.
func NewOutputRoutingData(iv index.Interval, buf *buffer.FIBO) OutputRoutingData {
	return OutputRoutingData{Offset: iv.Begin - iv.LocalBase, Buffer: buf}
}

// Process writes (t, id-Offset) into the buffer.
func (o OutputRoutingData) Process(t float64, id int) {
	wire.EncodeEvent(o.Buffer.Insert(), t, id-o.Offset)
}

// InputRoutingData invokes a handler with the translated id.
type InputRoutingData struct {
	Offset  int
	Handler EventHandler
}

// NewGlobalInputRoutingData builds an InputRoutingData whose handler
// receives the untranslated global index (offset 0).
func NewGlobalInputRoutingData(handler EventHandler) InputRoutingData {
	return InputRoutingData{Offset: 0, Handler: handler}
}

// NewLocalInputRoutingData builds an InputRoutingData whose handler
// receives the interval-local index (LocalBase for Begin, counting up).
func NewLocalInputRoutingData(iv index.Interval, handler EventHandler) InputRoutingData {
	return InputRoutingData{Offset: iv.Begin - iv.LocalBase, Handler: handler}
}

// Process invokes the handler with (t, id-Offset).
func (in InputRoutingData) Process(t float64, id int) {
	in.Handler(t, id-in.Offset)
}

// Router is implemented by Table and Tree.
type Router interface {
	// InsertRoutingData registers data as the destination for every
	// global index in iv. Must be called before Build.
	InsertRoutingData(iv index.Interval, data RoutingData)
	// Build finalizes the router for querying. Must be called exactly
	// once, after every InsertRoutingData call and before any
	// ProcessEvent call.
	Build()
	// ProcessEvent dispatches (t, id) to every RoutingData whose
	// interval contains id.
	ProcessEvent(t float64, id int)
}

// Backend selects which Router implementation a port should use.
type Backend int

const (
	// Tree is the default for point-to-point ports: O(log n + k) per
	// event, memory linear in the number of intervals.
	Tree Backend = iota
	// Table is mandatory for collective ports, where insertion is the
	// entire producer-side processing step: O(1 + k) per event, memory
	// proportional to the total span of all intervals.
	Table
)

// New builds a Router using the requested backend.
func New(backend Backend) Router {
	switch backend {
	case Table:
		return newTableRouter()
	case Tree:
		return newTreeRouter()
	default:
		panic(fmt.Sprintf("router: unknown backend %d", backend))
	}
}

// CommunicationType is the connectivity shape of one port-to-port link:
// a single sender and receiver, or a collective spanning every rank of
// both sides.
type CommunicationType int

const (
	// PointToPoint connects exactly one sender to one receiver.
	PointToPoint CommunicationType = iota
	// Collective connects every rank of one side to every rank of the
	// other.
	Collective
)

// SelectBackend enforces the one rule a port's requested backend is not
// free to override: a Collective link is always routed through Table,
// regardless of what was requested. PointToPoint gets the requested
// backend. Mirrors EventOutputPort's router choice, which builds a
// TreeProcessingRouter only when the requested method is Tree and the
// connection is point-to-point, and falls back to a TableProcessingRouter
// for everything else.
func SelectBackend(commType CommunicationType, requested Backend) Backend {
	if requested == Tree && commType == PointToPoint {
		return Tree
	}
	return Table
}
