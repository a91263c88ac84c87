// Package spatial implements the spatial negotiator: given a producer
// IndexMap and a consumer IndexMap it computes, for every rank on each
// side, the set of (remote rank, IndexInterval) pairs that rank must
// communicate with.
package spatial

import (
	"fmt"
	"sort"

	"github.com/sarchlab/music/index"
)

// RemoteInterval is one routing interval this rank must exchange with a
// single remote rank.
type RemoteInterval struct {
	RemoteRank int
	Interval   index.Interval
}

// Result is the full negotiation outcome: for every local rank on either
// side, the routing intervals it owns.
type Result struct {
	ProducerRouting map[int][]RemoteInterval
	ConsumerRouting map[int][]RemoteInterval
}

// Negotiate intersects producer and consumer rank-by-rank and returns, for
// every rank on both sides, the routing intervals it must communicate
// over. Intervals are sorted by Begin to break ties, and
// non-overlap within an owner is required (already guaranteed by
// index.Map.Add).
func Negotiate(producer, consumer *index.Map) Result {
	res := Result{
		ProducerRouting: map[int][]RemoteInterval{},
		ConsumerRouting: map[int][]RemoteInterval{},
	}

	for _, p := range producer.Intervals() {
		for _, c := range consumer.Intervals() {
			overlap, ok := intersect(p.Interval, c.Interval)
			if !ok {
				continue
			}

			// Each side's routing interval carries the remote rank's
			// local base translated to the start of the overlap, so that
			// the overlap's Begin maps to the local index the remote rank
			// itself uses for it.
			consumerLocal := c.Interval.LocalBase + (overlap.Begin - c.Interval.Begin)
			producerLocal := p.Interval.LocalBase + (overlap.Begin - p.Interval.Begin)

			res.ProducerRouting[p.Rank] = append(res.ProducerRouting[p.Rank], RemoteInterval{
				RemoteRank: c.Rank,
				Interval:   index.NewInterval(overlap.Begin, overlap.End, consumerLocal),
			})
			res.ConsumerRouting[c.Rank] = append(res.ConsumerRouting[c.Rank], RemoteInterval{
				RemoteRank: p.Rank,
				Interval:   index.NewInterval(overlap.Begin, overlap.End, producerLocal),
			})
		}
	}

	for rank := range res.ProducerRouting {
		sortByBegin(res.ProducerRouting[rank])
	}
	for rank := range res.ConsumerRouting {
		sortByBegin(res.ConsumerRouting[rank])
	}

	return res
}

func intersect(a, b index.Interval) (index.Interval, bool) {
	begin := a.Begin
	if b.Begin > begin {
		begin = b.Begin
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if begin >= end {
		return index.Interval{}, false
	}
	return index.Interval{Begin: begin, End: end}, true
}

func sortByBegin(ris []RemoteInterval) {
	sort.Slice(ris, func(i, j int) bool { return ris[i].Interval.Begin < ris[j].Interval.Begin })
}

// VerifyPartition checks that the union of all per-rank routing intervals
// recovers the original map's span exactly, with no gaps or overlaps
// within a side. It is intended for
// use in tests and in debug builds, not on the runtime hot path.
func VerifyPartition(original *index.Map, routing map[int][]RemoteInterval) error {
	var all []index.Interval
	for _, ris := range routing {
		for _, ri := range ris {
			all = append(all, ri.Interval)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Begin < all[j].Begin })

	for i := 1; i < len(all); i++ {
		if all[i].Begin < all[i-1].End {
			return fmt.Errorf("spatial: overlapping routing intervals [%d,%d) and [%d,%d)",
				all[i-1].Begin, all[i-1].End, all[i].Begin, all[i].End)
		}
	}

	if len(original.Intervals()) == 0 {
		return nil
	}
	span := original.Span()
	if len(all) == 0 {
		return fmt.Errorf("spatial: no routing intervals cover span [%d,%d)", span.Begin, span.End)
	}
	if all[0].Begin != span.Begin || all[len(all)-1].End != span.End {
		return fmt.Errorf("spatial: routing intervals [%d,%d) do not cover full span [%d,%d)",
			all[0].Begin, all[len(all)-1].End, span.Begin, span.End)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Begin != all[i-1].End {
			return fmt.Errorf("spatial: gap in routing coverage between %d and %d", all[i-1].End, all[i].Begin)
		}
	}
	return nil
}
