package connector_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/connector"
	"github.com/sarchlab/music/router"
	"github.com/sarchlab/music/substrate"
)

var _ = Describe("Info.Backend", func() {
	It("honors Tree only for point-to-point links", func() {
		info := connector.Info{CommunicationType: router.PointToPoint, ProcessingMethod: router.Tree}
		Expect(info.Backend()).To(Equal(router.Tree))
	})

	It("forces Table for collective links even when Tree was requested", func() {
		info := connector.Info{CommunicationType: router.Collective, ProcessingMethod: router.Tree}
		Expect(info.Backend()).To(Equal(router.Table))
	})

	It("forces Table whenever Table was requested, point-to-point or not", func() {
		info := connector.Info{CommunicationType: router.PointToPoint, ProcessingMethod: router.Table}
		Expect(info.Backend()).To(Equal(router.Table))
	})
})

var _ = Describe("Info.Fuses", func() {
	It("fuses only same leader, direction and proxy status", func() {
		a := connector.Info{RemoteLeader: 1, Direction: connector.Output, IsProxy: false, IDFlag: 1}
		b := connector.Info{RemoteLeader: 1, Direction: connector.Output, IsProxy: false, IDFlag: 2}
		c := connector.Info{RemoteLeader: 2, Direction: connector.Output, IsProxy: false, IDFlag: 1}
		d := connector.Info{RemoteLeader: 1, Direction: connector.Input, IsProxy: false, IDFlag: 1}

		Expect(a.Fuses(b)).To(BeTrue())
		Expect(a.Fuses(c)).To(BeFalse())
		Expect(a.Fuses(d)).To(BeFalse())
	})
})

var _ = Describe("Connector", func() {
	It("ticks every subconnector it owns", func() {
		engine := sim.NewSerialEngine()
		srcPort, dstPort := substrate.NewPair(engine, 1*sim.GHz, nil, nil, "multi-src", "multi-dst")

		fiboA := buffer.NewFIBO(4)
		copy(fiboA.Insert(), []byte{1, 2, 3, 4})
		fiboB := buffer.NewFIBO(1)
		copy(fiboB.Insert(), []byte("x"))

		subA := connector.NewContinuousOutput(srcPort, dstPort, srcPort, fiboA)
		subB := connector.NewMessageOutput(srcPort, dstPort, srcPort, fiboB)

		c := connector.New(connector.Info{RemoteLeader: 0}, subA, subB)
		Expect(c.Subconnectors()).To(HaveLen(2))

		c.Tick(0)

		Expect(fiboA.IsEmpty()).To(BeTrue())
		Expect(fiboB.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("ProxyConnector", func() {
	It("ticks without error and carries no traffic", func() {
		p := connector.NewProxyConnector(connector.Info{RemoteLeader: 3})
		Expect(p.Info.IsProxy).To(BeTrue())
		Expect(func() { p.Tick(0) }).NotTo(Panic())
	})
})
