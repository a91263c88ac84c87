package scheduler

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/clock"
	"github.com/sarchlab/music/connector"
)

// PlanWindowTicks is how many ticks ahead runtime.Runtime asks Plan to
// compute a connector schedule for in one pass, whichever agent is active. 100, matching the fixed iteration
// count Scheduler::createMultiConnectors runs createMultiConnStep for
// before finalizing a window and resetting for the next rank.
var PlanWindowTicks int64 = 100

// Node is one rank participating in the job's schedule graph: its own
// local clock, advanced independently of every other node's, only when
// one of its links needs it to catch up. Plan builds one implicit peer
// Node per registered link (the caller's own rank is not a Node; its
// position is the window's running time) and steps each the way
// Scheduler::createMultiConnNext steps the job's full node graph: a peer
// advances tick by tick while its link's nextReceive lies ahead of it.
type Node struct {
	ID     int
	Leader int
	NProcs int

	localTime clock.Clock
}

// NewNode builds a Node whose clock starts at localTime.
func NewNode(id, leader, nProcs int, localTime clock.Clock) *Node {
	return &Node{ID: id, Leader: leader, NProcs: nProcs, localTime: localTime}
}

// LocalTime returns the node's current position in the schedule.
func (n *Node) LocalTime() clock.Clock { return n.localTime }

func (n *Node) advance() { n.localTime = n.localTime.Tick() }

// MultiConnector is what Plan hands the runtime once two or more
// connectors due on the same tick share a fusion key: LumpConnectors has
// already merged their subconnectors into one, so ticking it once ticks
// every fused link. Defined as an alias rather than a distinct struct
// because that merged Connector already is the multiconnector — nothing
// in this package needs a wrapper around it beyond what connector.New
// already builds.
type MultiConnector = connector.Connector

// Tickable is anything Scheduler can place in a plan: *connector.Connector
// and *connector.ProxyConnector both satisfy it.
type Tickable interface {
	Tick(t sim.VTimeInSec)
}

// Entry is one (time, connector) pair in a computed plan.
type Entry struct {
	Time      clock.Clock
	Connector Tickable
}

type registration struct {
	conn Tickable
	sync *SConnection
	dir  connector.Direction
}

// SchedulerAgent is the tick-driving strategy a Scheduler delegates plan
// computation to. UnicommAgent and MulticommAgent are the two variants
// scheduler_agent.hh declares; Scheduler.Plan picks between them based on
// whether lumping could ever apply.
type SchedulerAgent interface {
	// Tick computes the plan for one window starting at localTime,
	// without mutating localTime itself.
	Tick(localTime clock.Clock, windowTicks int64) []Entry
}

// UnicommAgent drives a job with at most one registered connector: there
// is nothing to lump, so it walks the window and returns each tick the
// lone connector's synchronizer says to fire on, unfused.
type UnicommAgent struct {
	s *Scheduler
}

// NewUnicommAgent builds a UnicommAgent over s's current registrations.
func NewUnicommAgent(s *Scheduler) *UnicommAgent { return &UnicommAgent{s: s} }

// Tick computes the window's plan without attempting to lump anything.
func (a *UnicommAgent) Tick(localTime clock.Clock, windowTicks int64) []Entry {
	return a.s.rawWindow(localTime, windowTicks)
}

// MulticommAgent drives a job with two or more registered connectors: a
// single tick may have several connectors due at once, so every tick's
// entries pass through LumpConnectors before the plan is returned, fusing
// whichever of them share a remote leader, direction and proxy status
// into a single MultiConnector the way Scheduler::createMultiConnStep
// fuses cCache entries bound for the same remote leader.
type MulticommAgent struct {
	s *Scheduler
}

// NewMulticommAgent builds a MulticommAgent over s's current
// registrations.
func NewMulticommAgent(s *Scheduler) *MulticommAgent { return &MulticommAgent{s: s} }

// Tick computes the window's plan, lumping same-tick connectors that
// share a fusion key.
func (a *MulticommAgent) Tick(localTime clock.Clock, windowTicks int64) []Entry {
	raw := a.s.rawWindow(localTime, windowTicks)
	return lumpEntries(raw)
}

// Scheduler computes, for one program's own clock, the ordered list of
// connector ticks needed to keep every registered connector's
// synchronizer satisfied.
type Scheduler struct {
	registrations []registration
}

// New builds an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{}
}

// Register adds a connector to the schedule, tracked by its own
// synchronizer and direction.
func (s *Scheduler) Register(conn Tickable, sync *SConnection, dir connector.Direction) {
	s.registrations = append(s.registrations, registration{conn: conn, sync: sync, dir: dir})
}

// agent picks UnicommAgent for a job with nothing to ever lump, and
// MulticommAgent once a second connector makes fusion possible. The
// original's own rank/process-count-driven selection logic was not part
// of the retrieved source; registration count is this package's stand-in,
// recorded as an open decision in the grounding ledger.
func (s *Scheduler) agent() SchedulerAgent {
	if len(s.registrations) <= 1 {
		return NewUnicommAgent(s)
	}
	return NewMulticommAgent(s)
}

// Plan walks windowTicks ticks forward from localTime — without advancing
// the caller's own clock — and returns every (time, connector) pair whose
// synchronizer says to communicate at that tick, lumped where the active
// agent allows it.
func (s *Scheduler) Plan(localTime clock.Clock, windowTicks int64) []Entry {
	return s.agent().Tick(localTime, windowTicks)
}

// rawWindow is the node-graph stepping pass both agents share:
// Scheduler::createMultiConnNext's algorithm applied to one Node per
// registered link. The caller's own rank is represented by t, which
// starts at localTime and steps once per window tick (localTime itself is
// never modified); each registration's implicit peer Node advances on its
// own, exactly when its one inbound or outbound connection's nextReceive
// has run ahead of it — mirroring the real per-node
// "if node.nextReceive() > node.localTime()" advance guard.
func (s *Scheduler) rawWindow(localTime clock.Clock, windowTicks int64) []Entry {
	peers := make([]*Node, len(s.registrations))
	for i := range s.registrations {
		peers[i] = NewNode(i+1, i+1, 1, localTime)
	}

	var plan []Entry
	t := localTime
	for i := int64(0); i < windowTicks; i++ {
		for idx, r := range s.registrations {
			peer := peers[idx]
			for r.sync.PeekNextReceive().After(peer.localTime) {
				peer.advance()
			}

			preTime, postTime := t, peer.localTime
			if r.dir == connector.Input {
				preTime, postTime = peer.localTime, t
			}

			ready := !r.sync.PeekNextSend().After(preTime) && r.sync.PeekNextReceive().Equal(postTime)
			if !ready {
				continue
			}

			plan = append(plan, Entry{Time: t, Connector: r.conn})
			r.sync.nextCommunication()
		}
		t = t.Tick()
	}
	return plan
}

// lumpEntries groups entries sharing an exact Time and fuses whichever of
// each group's *connector.Connector entries share a fusion key, via
// LumpConnectors. Entries carrying any other Tickable (a ProxyConnector,
// or a caller's own type, as in this package's tests) pass through
// unchanged: there is nothing to merge their subconnectors into.
func lumpEntries(entries []Entry) []Entry {
	type group struct {
		time    clock.Clock
		entries []Entry
	}

	var groups []group
	index := map[int64]int{}
	for _, e := range entries {
		key := e.Time.IntegerTime()
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			groups = append(groups, group{time: e.Time})
			index[key] = gi
		}
		groups[gi].entries = append(groups[gi].entries, e)
	}

	var out []Entry
	for _, g := range groups {
		var conns []*connector.Connector
		var rest []Entry
		for _, e := range g.entries {
			if c, ok := e.Connector.(*connector.Connector); ok {
				conns = append(conns, c)
				continue
			}
			rest = append(rest, e)
		}

		out = append(out, rest...)
		for _, fused := range LumpConnectors(conns) {
			out = append(out, Entry{Time: g.time, Connector: fused})
		}
	}
	return out
}

// Flush returns one final entry per registered connector at time t,
// regardless of what its synchronizer's own schedule says — the pass run
// once at the end of a job to drain whatever is still staged.
func (s *Scheduler) Flush(t clock.Clock) []Entry {
	plan := make([]Entry, 0, len(s.registrations))
	for _, r := range s.registrations {
		plan = append(plan, Entry{Time: t, Connector: r.conn})
	}
	return plan
}
