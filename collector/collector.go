package collector

import (
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/musicerr"
)

// Collector copies the next block out of every BIFO routed to one
// continuous port back into that port's application memory. allowedBuffered
// bounds how many ticks' worth of blocks a BIFO may hold before the port is
// considered backlogged; it sizes the BIFO the caller constructs, not
// anything Collector enforces directly.
type Collector struct {
	dataMap         *index.DataMap
	allowedBuffered int
	order           []*buffer.BIFO
	byBIFO          map[*buffer.BIFO][]bufferInterval
}

// NewCollector builds a Collector over dataMap, recording allowedBuffered
// for callers that need to size their BIFOs accordingly.
func NewCollector(dataMap *index.DataMap, allowedBuffered int) *Collector {
	return &Collector{
		dataMap:         dataMap,
		allowedBuffered: allowedBuffered,
		byBIFO:          map[*buffer.BIFO][]bufferInterval{},
	}
}

// AllowedBuffered returns the configured buffering depth.
func (c *Collector) AllowedBuffered() int { return c.allowedBuffered }

// AddRoutingInterval registers buf as the source for the rank-local span
// described by iv. Call once per routing interval produced by spatial
// negotiation, before the first Collect.
func (c *Collector) AddRoutingInterval(iv index.Interval, buf *buffer.BIFO) {
	if _, ok := c.byBIFO[buf]; !ok {
		c.order = append(c.order, buf)
	}
	c.byBIFO[buf] = append(c.byBIFO[buf], bufferInterval{localBase: iv.LocalBase, length: iv.Len()})
}

// Collect copies one block from every routed BIFO into application memory.
// It reports an UnderrunError, rather than panicking, the moment a BIFO
// that still owes data for this tick is empty — the caller decides whether
// to abort the run.
func (c *Collector) Collect(tick int) error {
	for _, buf := range c.order {
		for _, bi := range c.byBIFO[buf] {
			for i := 0; i < bi.length; i++ {
				if buf.IsEmpty() {
					return &musicerr.UnderrunError{Buffer: "BIFO", Tick: tick}
				}
				copy(c.dataMap.At(bi.localBase+i), buf.Next())
			}
		}
	}
	return nil
}
