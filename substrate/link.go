// Package substrate is the narrow transport boundary between a
// subconnector and the underlying network. The only concrete
// implementation wraps akita's sim.Port and sim.Connection; nothing above
// this package imports akita directly for message delivery.
package substrate

import "github.com/sarchlab/akita/v4/sim"

// Link is what a subconnector sends and receives messages through. Any
// sim.Port already satisfies it.
type Link interface {
	CanSend() bool
	Send(msg sim.Msg) *sim.SendError
	PeekIncoming() sim.Msg
	RetrieveIncoming() sim.Msg
	AsRemote() sim.RemotePort
}

// PortLink adapts a plain sim.Port to Link for a point-to-point
// subconnector.
type PortLink struct {
	sim.Port
}

// NewPortLink wraps an existing akita port.
func NewPortLink(p sim.Port) *PortLink { return &PortLink{Port: p} }

// CollectiveLink fans a single local port out to every peer rank
// participating in a collective port, for the Table router backend that
// collective ports require. Gather and scatter are implemented one
// point-to-point send/receive per peer, same as any other subconnector;
// CollectiveLink's job is only to hold the peer set the connector loops
// over.
type CollectiveLink struct {
	sim.Port
	peers []sim.Port
}

// NewCollectiveLink builds a CollectiveLink for self, given the akita ports
// of every other rank in the collective.
func NewCollectiveLink(self sim.Port, peers []sim.Port) *CollectiveLink {
	return &CollectiveLink{Port: self, peers: peers}
}

// Peers returns the akita ports of every other rank in the collective, in
// rank order.
func (c *CollectiveLink) Peers() []sim.Port { return c.peers }
