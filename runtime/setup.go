// Package runtime is the two-phase entry point a simulated program uses:
// build a Setup by publishing ports, hand the Setup to New to get a
// Runtime, register its connectors with AddConnector, then tick it. New
// freezes the Setup — nothing can be published on it afterward.
package runtime

import (
	"github.com/sarchlab/music/config"
	"github.com/sarchlab/music/connector"
	"github.com/sarchlab/music/metrics"
	"github.com/sarchlab/music/musicerr"
	"github.com/sarchlab/music/port"
)

// Port is one published port together with the kind/direction tag its
// connector and subconnectors are built from. Its embedded *port.Port
// carries the lifecycle state machine.
type Port struct {
	*port.Port
	Kind      connector.Kind
	Direction connector.Direction
}

// Setup accumulates a program's published ports before a Runtime is
// built. Every publish call is only valid during this phase; once New has
// consumed a Setup, publishing again on it is a contract violation.
type Setup struct {
	lookup  config.Lookup
	metrics *metrics.Registry
	ports   map[string]*Port
	order   []string
	frozen  bool
}

// NewSetup builds an empty Setup backed by lookup for configuration
// values. metrics may be nil to disable instrument collection for this
// program.
func NewSetup(lookup config.Lookup, metricsRegistry *metrics.Registry) *Setup {
	return &Setup{lookup: lookup, metrics: metricsRegistry, ports: map[string]*Port{}}
}

// Lookup returns the configuration Lookup this Setup was built with.
func (s *Setup) Lookup() config.Lookup { return s.lookup }

// Ports returns every published port, in publish order.
func (s *Setup) Ports() []*Port {
	out := make([]*Port, len(s.order))
	for i, id := range s.order {
		out[i] = s.ports[id]
	}
	return out
}

// Port looks up a previously published port by id.
func (s *Setup) Port(id string) (*Port, bool) {
	p, ok := s.ports[id]
	return p, ok
}

// publish is a programmer-contract boundary, not a runtime condition: a
// caller publishing after freeze or reusing an id is a bug in the calling
// program, so it panics rather than returning an error, matching
// port.Map's own convention.
func (s *Setup) publish(id string, kind connector.Kind, dir connector.Direction) *Port {
	if s.frozen {
		panic(&musicerr.ContractError{Component: "runtime.Setup", Reason: "publish called after Setup was consumed by New"})
	}
	if _, exists := s.ports[id]; exists {
		panic(&musicerr.ContractError{Component: "runtime.Setup", Reason: "port " + id + " published twice"})
	}

	p := &Port{Port: port.New(id), Kind: kind, Direction: dir}
	p.Map()
	s.ports[id] = p
	s.order = append(s.order, id)
	return p
}

// PublishContOutput declares a continuous output port named id.
func (s *Setup) PublishContOutput(id string) *Port { return s.publish(id, connector.Continuous, connector.Output) }

// PublishContInput declares a continuous input port named id.
func (s *Setup) PublishContInput(id string) *Port { return s.publish(id, connector.Continuous, connector.Input) }

// PublishEventOutput declares an event output port named id.
func (s *Setup) PublishEventOutput(id string) *Port { return s.publish(id, connector.Event, connector.Output) }

// PublishEventInput declares an event input port named id.
func (s *Setup) PublishEventInput(id string) *Port { return s.publish(id, connector.Event, connector.Input) }

// PublishMessageOutput declares a message output port named id.
func (s *Setup) PublishMessageOutput(id string) *Port { return s.publish(id, connector.Message, connector.Output) }

// PublishMessageInput declares a message input port named id.
func (s *Setup) PublishMessageInput(id string) *Port { return s.publish(id, connector.Message, connector.Input) }

// freeze marks the Setup consumed: no further publish calls are valid.
func (s *Setup) freeze() { s.frozen = true }
