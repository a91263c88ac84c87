package connector

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/router"
)

// Info is the fusion key the scheduler's MultiConnector lumping groups
// connectors by: two connectors may be lumped into one only if they share
// a RemoteLeader, Direction, and IsProxy status. IDFlag distinguishes which
// port kinds a lumped connector actually carries, and is OR-ed together
// when connectors fuse.
//
// RemoteCommSize, ReceiverPortCode, CommunicationType and ProcessingMethod
// carry the rest of one link's connectivity description: how many ranks
// sit on the far side, which port on that side receives, whether the link
// is point-to-point or collective, and which event-router backend was
// requested for it. ProcessingMethod is only a request — Info.Backend
// (through router.SelectBackend) enforces the actual rule (Table is
// mandatory for Collective).
type Info struct {
	RemoteLeader      int
	Direction         Direction
	IsProxy           bool
	IDFlag            int
	RemoteCommSize    int
	ReceiverPortCode  int
	CommunicationType router.CommunicationType
	ProcessingMethod  router.Backend
}

// Backend resolves the router backend this link must actually use,
// applying the Table-for-Collective rule to the requested ProcessingMethod.
func (a Info) Backend() router.Backend {
	return router.SelectBackend(a.CommunicationType, a.ProcessingMethod)
}

// Fuses reports whether a and b share a fusion key and may be represented
// by a single scheduled connector.
func (a Info) Fuses(b Info) bool {
	return a.RemoteLeader == b.RemoteLeader && a.Direction == b.Direction && a.IsProxy == b.IsProxy
}

// Connector owns every subconnector serving one rank-pair link and ticks
// them together. A connector with subconnectors of more than one Kind is
// what the scheduler calls a multiconnector.
type Connector struct {
	Info          Info
	subconnectors []*Subconnector
}

// New builds a Connector over the given subconnectors, which must all
// share the same Info.
func New(info Info, subconnectors ...*Subconnector) *Connector {
	return &Connector{Info: info, subconnectors: subconnectors}
}

// Add appends a subconnector to an existing connector — the mechanism the
// scheduler's lumping pass uses to fuse two same-key connectors into one.
func (c *Connector) Add(s *Subconnector) {
	c.subconnectors = append(c.subconnectors, s)
}

// Subconnectors returns the connector's subconnectors, in the order they
// were added.
func (c *Connector) Subconnectors() []*Subconnector { return c.subconnectors }

// Tick ticks every subconnector this connector owns.
func (c *Connector) Tick(t sim.VTimeInSec) {
	for _, s := range c.subconnectors {
		s.Tick(t)
	}
}

// ProxyConnector stands in for a link whose far endpoint is not reachable
// directly — a relay rank forwards on its behalf. It carries no
// subconnectors of its own; Tick is a no-op placeholder the scheduler can
// still slot into its plan so proxy hops occupy a turn like any other
// connector.
type ProxyConnector struct {
	Info Info
}

// NewProxyConnector builds a placeholder connector for a relayed hop.
func NewProxyConnector(info Info) *ProxyConnector {
	info.IsProxy = true
	return &ProxyConnector{Info: info}
}

// Tick is a no-op: the relay rank's own connectors carry the bytes.
func (p *ProxyConnector) Tick(sim.VTimeInSec) {}
