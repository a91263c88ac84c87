package runtime

import (
	"time"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/clock"
	"github.com/sarchlab/music/connector"
	"github.com/sarchlab/music/metrics"
	"github.com/sarchlab/music/musicerr"
	"github.com/sarchlab/music/scheduler"
)

// Runtime drives one simulated program's own clock forward one tick at a
// time, executing whatever the scheduler's plan says is due for that
// tick. It is built from a frozen Setup; ports cannot be published after
// this point.
type Runtime struct {
	setup      *Setup
	clk        clock.Clock
	scheduler  *scheduler.Scheduler
	metricsReg *metrics.Registry

	plan      []scheduler.Entry
	planIdx   int
	finalized bool
}

// New freezes setup and builds a Runtime ticking at tickInterval. The
// scheduler starts empty; callers add connectors with AddConnector before
// the first Tick.
func New(setup *Setup, tickInterval time.Duration) *Runtime {
	setup.freeze()
	return &Runtime{
		setup:      setup,
		clk:        clock.New(int64(time.Second), tickInterval.Nanoseconds()),
		scheduler:  scheduler.New(),
		metricsReg: setup.metrics,
	}
}

// Setup returns the frozen Setup this Runtime was built from.
func (r *Runtime) Setup() *Setup { return r.setup }

// AddConnector registers a connector with the runtime's scheduler, tracked
// by its own synchronizer and direction.
func (r *Runtime) AddConnector(conn scheduler.Tickable, sync *scheduler.SConnection, dir connector.Direction) {
	r.scheduler.Register(conn, sync, dir)
}

// Tick executes every scheduled connector due at the current local time,
// then advances the local clock by one tick. The scheduler's plan window
// is recomputed lazily, once the previous window is exhausted.
func (r *Runtime) Tick() {
	if r.finalized {
		panic(&musicerr.ContractError{Component: "runtime.Runtime", Reason: "Tick called after Finalize"})
	}

	if r.planIdx >= len(r.plan) {
		r.plan = r.scheduler.Plan(r.clk, scheduler.PlanWindowTicks)
		r.planIdx = 0
	}

	now := sim.VTimeInSec(r.Time())
	for r.planIdx < len(r.plan) && r.plan[r.planIdx].Time.Equal(r.clk) {
		r.plan[r.planIdx].Connector.Tick(now)
		r.metricsReg.EventScheduled()
		r.planIdx++
	}

	r.clk = r.clk.Tick()
	r.metricsReg.TickProcessed()
}

// Time returns the current local time in seconds.
func (r *Runtime) Time() float64 { return r.clk.Time() }

// Finalize drains every registered connector one last time regardless of
// its synchronizer's own schedule, then marks the Runtime done. Calling
// Tick afterward aborts the run.
func (r *Runtime) Finalize() {
	for _, e := range r.scheduler.Flush(r.clk) {
		e.Connector.Tick(sim.VTimeInSec(r.Time()))
	}
	r.finalized = true
}
