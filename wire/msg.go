package wire

import "github.com/sarchlab/akita/v4/sim"

// ContinuousMsg carries one tick's worth of raw application bytes over a
// continuous port's intercommunicator.
type ContinuousMsg struct {
	sim.MsgMeta
	Payload []byte
}

// Meta returns the message's akita metadata, satisfying sim.Msg.
func (m *ContinuousMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

// EventMsg carries the FIBO contents of one tick's worth of spikes over an
// event port's intercommunicator: a packed sequence of EventRecordSize
// records, insertion order preserved.
type EventMsg struct {
	sim.MsgMeta
	Records []byte
}

// Meta returns the message's akita metadata, satisfying sim.Msg.
func (m *EventMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

// MessageMsg carries one message-port payload, length-prefixed.
type MessageMsg struct {
	sim.MsgMeta
	SendTime float64
	Payload  []byte
}

// Meta returns the message's akita metadata, satisfying sim.Msg.
func (m *MessageMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

// ContinuousMsgBuilder is a factory for ContinuousMsg, matching the
// teacher's With*/Build fluent builder convention.
type ContinuousMsgBuilder struct {
	src, dst sim.Port
	sendTime sim.VTimeInSec
	payload  []byte
}

// WithSrc sets the source port of the message.
func (b ContinuousMsgBuilder) WithSrc(src sim.Port) ContinuousMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the message.
func (b ContinuousMsgBuilder) WithDst(dst sim.Port) ContinuousMsgBuilder {
	b.dst = dst
	return b
}

// WithSendTime sets the send time of the message.
func (b ContinuousMsgBuilder) WithSendTime(t sim.VTimeInSec) ContinuousMsgBuilder {
	b.sendTime = t
	return b
}

// WithPayload sets the raw bytes carried by the message.
func (b ContinuousMsgBuilder) WithPayload(payload []byte) ContinuousMsgBuilder {
	b.payload = payload
	return b
}

// Build creates the ContinuousMsg.
func (b ContinuousMsgBuilder) Build() *ContinuousMsg {
	return &ContinuousMsg{
		MsgMeta: sim.MsgMeta{
			ID:       sim.GetIDGenerator().Generate(),
			Src:      b.src.AsRemote(),
			Dst:      b.dst.AsRemote(),
			SendTime: b.sendTime,
		},
		Payload: b.payload,
	}
}

// EventMsgBuilder is a factory for EventMsg.
type EventMsgBuilder struct {
	src, dst sim.Port
	sendTime sim.VTimeInSec
	records  []byte
}

// WithSrc sets the source port of the message.
func (b EventMsgBuilder) WithSrc(src sim.Port) EventMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the message.
func (b EventMsgBuilder) WithDst(dst sim.Port) EventMsgBuilder {
	b.dst = dst
	return b
}

// WithSendTime sets the send time of the message.
func (b EventMsgBuilder) WithSendTime(t sim.VTimeInSec) EventMsgBuilder {
	b.sendTime = t
	return b
}

// WithRecords sets the packed event records carried by the message.
func (b EventMsgBuilder) WithRecords(records []byte) EventMsgBuilder {
	b.records = records
	return b
}

// Build creates the EventMsg.
func (b EventMsgBuilder) Build() *EventMsg {
	return &EventMsg{
		MsgMeta: sim.MsgMeta{
			ID:       sim.GetIDGenerator().Generate(),
			Src:      b.src.AsRemote(),
			Dst:      b.dst.AsRemote(),
			SendTime: b.sendTime,
		},
		Records: b.records,
	}
}

// MessageMsgBuilder is a factory for MessageMsg.
type MessageMsgBuilder struct {
	src, dst sim.Port
	sendTime sim.VTimeInSec
	payload  []byte
}

// WithSrc sets the source port of the message.
func (b MessageMsgBuilder) WithSrc(src sim.Port) MessageMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the message.
func (b MessageMsgBuilder) WithDst(dst sim.Port) MessageMsgBuilder {
	b.dst = dst
	return b
}

// WithSendTime sets the send time of the message.
func (b MessageMsgBuilder) WithSendTime(t sim.VTimeInSec) MessageMsgBuilder {
	b.sendTime = t
	return b
}

// WithPayload sets the message payload bytes.
func (b MessageMsgBuilder) WithPayload(payload []byte) MessageMsgBuilder {
	b.payload = payload
	return b
}

// Build creates the MessageMsg.
func (b MessageMsgBuilder) Build() *MessageMsg {
	return &MessageMsg{
		MsgMeta: sim.MsgMeta{
			ID:       sim.GetIDGenerator().Generate(),
			Src:      b.src.AsRemote(),
			Dst:      b.dst.AsRemote(),
			SendTime: b.sendTime,
		},
		SendTime: float64(b.sendTime),
		Payload:  b.payload,
	}
}
