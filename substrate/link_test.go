package substrate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/substrate"
)

type testMsg struct {
	sim.MsgMeta
}

func (m *testMsg) Meta() *sim.MsgMeta { return &m.MsgMeta }

var _ = Describe("NewPair", func() {
	It("delivers a message sent on one port to the other", func() {
		engine := sim.NewSerialEngine()
		src, dst := substrate.NewPair(engine, 1*sim.GHz, nil, nil, "a", "b")

		msg := &testMsg{MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: src.AsRemote(),
			Dst: dst.AsRemote(),
		}}

		Expect(src.Send(msg)).To(BeNil())
		engine.Run()

		Expect(dst.PeekIncoming()).NotTo(BeNil())
		Expect(dst.RetrieveIncoming()).To(BeIdenticalTo(msg))
	})
})

var _ = Describe("CollectiveLink", func() {
	It("exposes the peer set it was built with", func() {
		engine := sim.NewSerialEngine()
		self, peer := substrate.NewPair(engine, 1*sim.GHz, nil, nil, "self", "peer")

		cl := substrate.NewCollectiveLink(self, []sim.Port{peer})
		Expect(cl.Peers()).To(HaveLen(1))
		Expect(cl.Peers()[0]).To(BeIdenticalTo(peer))
	})
})
