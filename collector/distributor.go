// Package collector moves bytes between a program's own continuous-port
// memory and the FIBO/BIFO staging buffers that feed the subconnectors.
// Distributor runs on the producer side once per tick, copying application
// memory out into every FIBO with a routing interval over it; Collector
// runs on the consumer side, copying every BIFO's next block back into
// application memory.
package collector

import (
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/index"
)

// bufferInterval pairs a routing interval's rank-local base with its
// length, mirroring the original's habit of recompiling the interval's end
// field into a length once routing is fixed.
type bufferInterval struct {
	localBase int
	length    int
}

// Distributor copies one continuous port's application memory into the
// FIBOs that route the data to every connected receiver rank.
type Distributor struct {
	dataMap *index.DataMap
	order   []*buffer.FIBO
	byFIBO  map[*buffer.FIBO][]bufferInterval
}

// NewDistributor builds a Distributor over dataMap. dataMap must outlive
// the Distributor and must not be mutated concurrently with Distribute.
func NewDistributor(dataMap *index.DataMap) *Distributor {
	return &Distributor{dataMap: dataMap, byFIBO: map[*buffer.FIBO][]bufferInterval{}}
}

// AddRoutingInterval registers buf as the destination for the rank-local
// span described by iv. Call once per routing interval produced by spatial
// negotiation, before the first Distribute.
func (d *Distributor) AddRoutingInterval(iv index.Interval, buf *buffer.FIBO) {
	if _, ok := d.byFIBO[buf]; !ok {
		d.order = append(d.order, buf)
	}
	d.byFIBO[buf] = append(d.byFIBO[buf], bufferInterval{localBase: iv.LocalBase, length: iv.Len()})
}

// Distribute copies every routed element of the current tick's application
// memory into its destination FIBOs, in the order routing intervals were
// added.
func (d *Distributor) Distribute() {
	for _, buf := range d.order {
		for _, bi := range d.byFIBO[buf] {
			for i := 0; i < bi.length; i++ {
				copy(buf.Insert(), d.dataMap.At(bi.localBase+i))
			}
		}
	}
}
