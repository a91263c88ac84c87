// Command eventgen runs a producer that fires a handful of spike events
// into a router and an event subconnector, and a consumer that dispatches
// them back out to a handler — exercising the event-port path the
// passthrough sample's continuous port does not touch.
package main

import (
	"fmt"
	"time"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/clock"
	"github.com/sarchlab/music/connector"
	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/router"
	"github.com/sarchlab/music/scheduler"
	"github.com/sarchlab/music/substrate"
	"github.com/sarchlab/music/wire"
	"github.com/tebeka/atexit"
)

func main() {
	engine := sim.NewSerialEngine()
	producerPort, consumerPort := substrate.NewPair(engine, 1*sim.GHz, nil, nil, "producer.spikes", "consumer.spikes")

	fibo := buffer.NewFIBO(wire.EventRecordSize)

	// This link is a single producer talking to a single consumer, so it
	// requests Tree; SelectBackend would fall back to Table on its own if
	// the link were Collective instead.
	linkInfo := connector.Info{
		CommunicationType: router.PointToPoint,
		ProcessingMethod:  router.Tree,
	}

	span := index.NewInterval(0, 10, 0)
	outRtr := router.New(linkInfo.Backend())
	outRtr.InsertRoutingData(span, router.NewOutputRoutingData(span, fibo))
	outRtr.Build()

	var received []int
	inRtr := router.New(linkInfo.Backend())
	inRtr.InsertRoutingData(span, router.NewGlobalInputRoutingData(func(t float64, id int) {
		received = append(received, id)
	}))
	inRtr.Build()

	out := connector.NewEventOutput(producerPort, consumerPort, producerPort, fibo)
	in := connector.NewEventInput(producerPort, consumerPort, consumerPort, inRtr)

	tickInterval := time.Millisecond
	base := clock.New(int64(time.Second), tickInterval.Nanoseconds())
	sched := scheduler.New()
	sched.Register(out, scheduler.NewSConnection(base, 0, 0), connector.Output)
	sched.Register(in, scheduler.NewSConnection(base, 0, 0), connector.Input)

	fired := []int{2, 5, 7}
	clk := base
	for i, id := range fired {
		outRtr.ProcessEvent(float64(i), id)
		for _, e := range sched.Plan(clk, 1) {
			e.Connector.Tick(sim.VTimeInSec(clk.Time()))
		}
		engine.Run()
		clk = clk.Tick()
	}
	for _, e := range sched.Flush(clk) {
		e.Connector.Tick(sim.VTimeInSec(clk.Time()))
	}
	engine.Run()

	fmt.Println("fired:", fired)
	fmt.Println("received:", received)

	atexit.Exit(0)
}
