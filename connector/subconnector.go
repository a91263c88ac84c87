// Package connector implements the six subconnector variants a port-to-port
// link is built from — {continuous, event, message} crossed with
// {output, input} — as one tagged-variant type rather than a parallel class
// hierarchy per variant. Connector groups the subconnectors serving one
// link and ticks them together; Scheduler decides when a Connector's turn
// comes.
package connector

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/router"
	"github.com/sarchlab/music/substrate"
	"github.com/sarchlab/music/wire"
)

// Kind selects which port type a Subconnector serves.
type Kind int

const (
	Continuous Kind = iota
	Event
	Message
)

// Direction selects which side of a link a Subconnector serves.
type Direction int

const (
	Output Direction = iota
	Input
)

// MessageHandler receives one delivered message-port payload.
type MessageHandler func(sendTime float64, payload []byte)

// Subconnector is one direction of one port type on one link. Exactly the
// fields its Kind/Direction combination uses are non-nil; the others are
// zero. Tick is the only entry point a Connector calls.
type Subconnector struct {
	Kind      Kind
	Direction Direction

	src, dst sim.Port
	link     substrate.Link

	outFIBO *buffer.FIBO // Output: staged bytes awaiting send, this tick.
	inBIFO  *buffer.BIFO // Continuous Input: staged blocks awaiting collection.
	rtr     router.Router
	handler MessageHandler
}

// NewContinuousOutput builds a Subconnector that sends fibo's staged bytes
// as one ContinuousMsg per tick and resets fibo afterward.
func NewContinuousOutput(src, dst sim.Port, link substrate.Link, fibo *buffer.FIBO) *Subconnector {
	return &Subconnector{Kind: Continuous, Direction: Output, src: src, dst: dst, link: link, outFIBO: fibo}
}

// NewContinuousInput builds a Subconnector that appends each received
// ContinuousMsg's payload to bifo as one block.
func NewContinuousInput(src, dst sim.Port, link substrate.Link, bifo *buffer.BIFO) *Subconnector {
	return &Subconnector{Kind: Continuous, Direction: Input, src: src, dst: dst, link: link, inBIFO: bifo}
}

// NewEventOutput builds a Subconnector that sends fibo's staged event
// records as one EventMsg per tick and resets fibo afterward. The router
// backing fibo must already have written the events during this tick's
// dispatch.
func NewEventOutput(src, dst sim.Port, link substrate.Link, fibo *buffer.FIBO) *Subconnector {
	return &Subconnector{Kind: Event, Direction: Output, src: src, dst: dst, link: link, outFIBO: fibo}
}

// NewEventInput builds a Subconnector that decodes each received EventMsg's
// records and dispatches them through rtr.
func NewEventInput(src, dst sim.Port, link substrate.Link, rtr router.Router) *Subconnector {
	return &Subconnector{Kind: Event, Direction: Input, src: src, dst: dst, link: link, rtr: rtr}
}

// NewMessageOutput builds a Subconnector that sends fibo's staged
// length-prefixed message records as one MessageMsg per tick.
func NewMessageOutput(src, dst sim.Port, link substrate.Link, fibo *buffer.FIBO) *Subconnector {
	return &Subconnector{Kind: Message, Direction: Output, src: src, dst: dst, link: link, outFIBO: fibo}
}

// NewMessageInput builds a Subconnector that invokes handler for each
// received MessageMsg.
func NewMessageInput(src, dst sim.Port, link substrate.Link, handler MessageHandler) *Subconnector {
	return &Subconnector{Kind: Message, Direction: Input, src: src, dst: dst, link: link, handler: handler}
}

// Tick performs this subconnector's work for the current virtual time t.
func (s *Subconnector) Tick(t sim.VTimeInSec) {
	switch {
	case s.Kind == Continuous && s.Direction == Output:
		s.tickContinuousOutput(t)
	case s.Kind == Continuous && s.Direction == Input:
		s.tickContinuousInput()
	case s.Kind == Event && s.Direction == Output:
		s.tickEventOutput(t)
	case s.Kind == Event && s.Direction == Input:
		s.tickEventInput()
	case s.Kind == Message && s.Direction == Output:
		s.tickMessageOutput(t)
	case s.Kind == Message && s.Direction == Input:
		s.tickMessageInput()
	default:
		panic(fmt.Sprintf("connector: unhandled kind/direction combination %d/%d", s.Kind, s.Direction))
	}
}

func (s *Subconnector) tickContinuousOutput(t sim.VTimeInSec) {
	msg := wire.ContinuousMsgBuilder{}.
		WithSrc(s.src).WithDst(s.dst).WithSendTime(t).
		WithPayload(append([]byte(nil), s.outFIBO.View()...)).
		Build()
	if err := s.link.Send(msg); err != nil {
		panic(fmt.Sprintf("connector: continuous send failed: %v", err))
	}
	s.outFIBO.Reset()
}

func (s *Subconnector) tickContinuousInput() {
	msg := s.link.RetrieveIncoming()
	if msg == nil {
		return
	}
	cm := msg.(*wire.ContinuousMsg)
	block := s.inBIFO.InsertBlock()
	n := copy(block, cm.Payload)
	s.inBIFO.TrimBlock(n)
}

func (s *Subconnector) tickEventOutput(t sim.VTimeInSec) {
	if s.outFIBO.IsEmpty() {
		return
	}
	msg := wire.EventMsgBuilder{}.
		WithSrc(s.src).WithDst(s.dst).WithSendTime(t).
		WithRecords(append([]byte(nil), s.outFIBO.View()...)).
		Build()
	if err := s.link.Send(msg); err != nil {
		panic(fmt.Sprintf("connector: event send failed: %v", err))
	}
	s.outFIBO.Reset()
}

func (s *Subconnector) tickEventInput() {
	msg := s.link.RetrieveIncoming()
	if msg == nil {
		return
	}
	em := msg.(*wire.EventMsg)
	for off := 0; off+wire.EventRecordSize <= len(em.Records); off += wire.EventRecordSize {
		t, id := wire.DecodeEvent(em.Records[off : off+wire.EventRecordSize])
		s.rtr.ProcessEvent(t, id)
	}
}

func (s *Subconnector) tickMessageOutput(t sim.VTimeInSec) {
	if s.outFIBO.IsEmpty() {
		return
	}
	msg := wire.MessageMsgBuilder{}.
		WithSrc(s.src).WithDst(s.dst).WithSendTime(t).
		WithPayload(append([]byte(nil), s.outFIBO.View()...)).
		Build()
	if err := s.link.Send(msg); err != nil {
		panic(fmt.Sprintf("connector: message send failed: %v", err))
	}
	s.outFIBO.Reset()
}

func (s *Subconnector) tickMessageInput() {
	msg := s.link.RetrieveIncoming()
	if msg == nil {
		return
	}
	mm := msg.(*wire.MessageMsg)
	s.handler(mm.SendTime, mm.Payload)
}
