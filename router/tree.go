package router

import (
	"sort"

	"github.com/sarchlab/music/index"
)

// treeRouter is a static, centered interval tree: O(log n + k) dispatch,
// memory linear in the number of intervals rather than their span. Built
// once via Build; immutable and queryable afterward.
type treeRouter struct {
	pending []treeEntry
	root    *treeNode
	built   bool
}

type treeEntry struct {
	interval index.Interval
	data     RoutingData
}

type treeNode struct {
	center      int
	byBeginAsc  []treeEntry
	byEndDesc   []treeEntry
	left, right *treeNode
}

func newTreeRouter() *treeRouter {
	return &treeRouter{}
}

func (t *treeRouter) InsertRoutingData(iv index.Interval, data RoutingData) {
	if t.built {
		panic("router: InsertRoutingData called after Build")
	}
	t.pending = append(t.pending, treeEntry{interval: iv, data: data})
}

// Build constructs the static interval tree from every interval inserted
// so far. Must be called exactly once, before any ProcessEvent call.
func (t *treeRouter) Build() {
	if t.built {
		panic("router: Build called twice")
	}
	t.root = buildNode(t.pending)
	t.pending = nil
	t.built = true
}

func buildNode(entries []treeEntry) *treeNode {
	if len(entries) == 0 {
		return nil
	}

	center := medianPoint(entries)

	var overlapping, left, right []treeEntry
	for _, e := range entries {
		switch {
		case e.interval.Contains(center):
			overlapping = append(overlapping, e)
		case e.interval.End <= center:
			left = append(left, e)
		default:
			right = append(right, e)
		}
	}

	byBeginAsc := append([]treeEntry(nil), overlapping...)
	sort.Slice(byBeginAsc, func(i, j int) bool { return byBeginAsc[i].interval.Begin < byBeginAsc[j].interval.Begin })
	byEndDesc := append([]treeEntry(nil), overlapping...)
	sort.Slice(byEndDesc, func(i, j int) bool { return byEndDesc[i].interval.End > byEndDesc[j].interval.End })

	return &treeNode{
		center:     center,
		byBeginAsc: byBeginAsc,
		byEndDesc:  byEndDesc,
		left:       buildNode(left),
		right:      buildNode(right),
	}
}

// medianPoint picks the median interval boundary as the partition center.
func medianPoint(entries []treeEntry) int {
	points := make([]int, 0, len(entries)*2)
	for _, e := range entries {
		points = append(points, e.interval.Begin, e.interval.End-1)
	}
	sort.Ints(points)
	return points[len(points)/2]
}

func (t *treeRouter) ProcessEvent(tm float64, id int) {
	for n := t.root; n != nil; {
		switch {
		case id == n.center:
			for _, e := range n.byBeginAsc {
				e.data.Process(tm, id)
			}
			return
		case id < n.center:
			for _, e := range n.byBeginAsc {
				if e.interval.Begin > id {
					break
				}
				e.data.Process(tm, id)
			}
			n = n.left
		default:
			for _, e := range n.byEndDesc {
				if e.interval.End <= id {
					break
				}
				e.data.Process(tm, id)
			}
			n = n.right
		}
	}
}
