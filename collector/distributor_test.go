package collector_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/collector"
	"github.com/sarchlab/music/index"
)

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

var _ = Describe("Distributor", func() {
	It("splits application memory across two routed FIBOs", func() {
		base := make([]byte, 4*10)
		for i := 0; i < 10; i++ {
			copy(base[i*4:i*4+4], u32(uint32(i)))
		}
		dm := index.NewDataMap(index.NewLinear(index.Global), base, 4)

		d := collector.NewDistributor(dm)
		fiboA := buffer.NewFIBO(4)
		fiboB := buffer.NewFIBO(4)

		d.AddRoutingInterval(index.NewInterval(0, 4, 0), fiboA)
		d.AddRoutingInterval(index.NewInterval(0, 6, 4), fiboB)

		d.Distribute()

		Expect(len(fiboA.View())).To(Equal(4 * 4))
		Expect(len(fiboB.View())).To(Equal(6 * 4))
		Expect(binary.LittleEndian.Uint32(fiboA.View()[0:4])).To(Equal(uint32(0)))
		Expect(binary.LittleEndian.Uint32(fiboB.View()[0:4])).To(Equal(uint32(4)))
	})
})
