package buffer_test

import (
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/buffer"
)

func writeBlock(b *buffer.BIFO, values ...uint32) {
	slot := b.InsertBlock()
	for i, v := range values {
		binary.LittleEndian.PutUint32(slot[i*4:i*4+4], v)
	}
	b.TrimBlock(len(values) * 4)
}

var _ = Describe("BIFO", func() {
	It("panics reading from an empty buffer (underrun)", func() {
		b := buffer.NewBIFO(4, 16)
		Expect(func() { b.Next() }).To(Panic())
	})

	// S6: three insert/trim cycles with wrap; Next must return inserted
	// bytes in FIFO order across the wrap boundary.
	It("returns inserted bytes in FIFO order across three cycles with wraparound", func() {
		b := buffer.NewBIFO(4, 8) // holds 2 elements per block

		writeBlock(b, 1, 2)
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(1)))
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(2)))

		writeBlock(b, 3, 4)
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(3)))
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(4)))

		writeBlock(b, 5, 6)
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(5)))
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(6)))

		Expect(b.IsEmpty()).To(BeTrue())
		Expect(func() { b.Next() }).To(Panic())
	})

	It("grows the backing array when a block would not otherwise fit", func() {
		b := buffer.NewBIFO(4, 8)
		writeBlock(b, 1, 2)
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(1)))
		writeBlock(b, 3, 4) // reader is still inside the first block, so the second goes above it

		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(2)))
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(3)))
		Expect(binary.LittleEndian.Uint32(b.Next())).To(Equal(uint32(4)))
	})

	It("aborts with overflow if a block is trimmed past capacity", func() {
		b := buffer.NewBIFO(4, 8)
		b.InsertBlock()
		Expect(func() { b.TrimBlock(1000) }).To(Panic())
	})
})
