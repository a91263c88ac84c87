// Package scheduler decides, for each tick of a program's own clock,
// which connectors have something to do, and in what order. It also lumps
// connectors sharing a destination into the fewest Connectors the topology
// allows.
package scheduler

import "github.com/sarchlab/music/clock"

// SConnection tracks the next-send/next-receive recurrence for one
// connector's link: on every local tick, TickOutput/TickInput answer
// whether this tick is the one at which the connector should actually
// communicate. Composed into whatever holds it, rather than inherited by
// an output/input connector subclass.
type SConnection struct {
	latency     int64 // timebase units of network delay to cover
	maxBuffered int64 // ticks of slack reserved on the send side

	nextSend    clock.Clock
	nextReceive clock.Clock
}

// NewSConnection builds an SConnection whose nextSend/nextReceive clocks
// start out identical to base (same timebase and tick interval, tick zero).
func NewSConnection(base clock.Clock, latency, maxBuffered int64) *SConnection {
	return &SConnection{
		latency:     latency,
		maxBuffered: maxBuffered,
		nextSend:    base.Reset(),
		nextReceive: base.Reset(),
	}
}

// SetSendTickInterval overrides the tick interval nextSend advances by —
// used when the consumer side samples at a coarser or finer grain than the
// producer's own clock.
func (s *SConnection) SetSendTickInterval(ticks int64) {
	s.nextSend = clock.New(s.nextSend.Timebase(), ticks).Ticks(int64(s.nextSend.TickCount()))
}

// SetReceiveTickInterval overrides the tick interval nextReceive advances
// by.
func (s *SConnection) SetReceiveTickInterval(ticks int64) {
	s.nextReceive = clock.New(s.nextReceive.Timebase(), ticks).Ticks(int64(s.nextReceive.TickCount()))
}

// nextCommunication advances nextReceive as far as it can go while still
// guaranteeing the oldest buffered data arrives in time, then jumps
// nextSend forward by maxBuffered+1 ticks of precalculated slack. A
// second, bCount-counting way of advancing nextSend exists in the
// original source but is commented out there and never executed; this
// follows the one live code path instead.
func (s *SConnection) nextCommunication() {
	limit := s.nextSend.IntegerTime() + s.latency - s.nextReceive.TickInterval()
	for s.nextReceive.IntegerTime() <= limit {
		s.nextReceive = s.nextReceive.Tick()
	}

	s.nextSend = s.nextSend.Ticks(s.maxBuffered + 1)
}

// PeekNextSend returns the next scheduled send tick without recomputing
// the recurrence.
func (s *SConnection) PeekNextSend() clock.Clock { return s.nextSend }

// PeekNextReceive returns the next scheduled receive tick without
// recomputing the recurrence.
func (s *SConnection) PeekNextReceive() clock.Clock { return s.nextReceive }

// TickOutput reports whether localTime is a send tick for this
// connection, recomputing the recurrence first if localTime has run ahead
// of the last computed nextSend.
func (s *SConnection) TickOutput(localTime clock.Clock) bool {
	if localTime.After(s.nextSend) {
		s.nextCommunication()
	}
	return localTime.Equal(s.nextSend)
}

// TickInput reports whether localTime is a receive tick for this
// connection, recomputing the recurrence first if localTime has run ahead
// of the last computed nextReceive.
func (s *SConnection) TickInput(localTime clock.Clock) bool {
	if localTime.After(s.nextReceive) {
		s.nextCommunication()
	}
	return localTime.Equal(s.nextReceive)
}
