package collector_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/collector"
	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/musicerr"
)

var _ = Describe("Collector", func() {
	It("copies one block from a routed BIFO back into application memory", func() {
		dst := make([]byte, 4*4)
		dm := index.NewDataMap(index.NewLinear(index.Global), dst, 4)

		c := collector.NewCollector(dm, 2)
		bifo := buffer.NewBIFO(4, 4*4)
		c.AddRoutingInterval(index.NewInterval(0, 4, 0), bifo)

		block := bifo.InsertBlock()
		for i := 0; i < 4; i++ {
			copy(block[i*4:i*4+4], u32(uint32(i*10)))
		}
		bifo.TrimBlock(4 * 4)

		Expect(c.Collect(0)).To(Succeed())

		for i := 0; i < 4; i++ {
			Expect(binary.LittleEndian.Uint32(dst[i*4 : i*4+4])).To(Equal(uint32(i * 10)))
		}
	})

	It("reports an underrun instead of panicking when a BIFO runs dry", func() {
		dst := make([]byte, 4*4)
		dm := index.NewDataMap(index.NewLinear(index.Global), dst, 4)

		c := collector.NewCollector(dm, 2)
		bifo := buffer.NewBIFO(4, 4*4)
		c.AddRoutingInterval(index.NewInterval(0, 4, 0), bifo)

		err := c.Collect(3)
		Expect(err).To(HaveOccurred())

		var underrun *musicerr.UnderrunError
		Expect(err).To(BeAssignableToTypeOf(underrun))
		Expect(err.(*musicerr.UnderrunError).Tick).To(Equal(3))
	})

	It("exposes the configured buffering depth", func() {
		dm := index.NewDataMap(index.NewLinear(index.Global), make([]byte, 4), 4)
		c := collector.NewCollector(dm, 5)
		Expect(c.AllowedBuffered()).To(Equal(5))
	})
})
