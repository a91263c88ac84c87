// Command passthrough runs two toy programs in one process — a producer
// and a consumer — wired together by a single continuous output/input
// subconnector pair, to exercise the setup/runtime/connector/buffer
// machinery end to end without a real multi-process job launcher.
package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/music/buffer"
	"github.com/sarchlab/music/clock"
	"github.com/sarchlab/music/config"
	"github.com/sarchlab/music/connector"
	"github.com/sarchlab/music/metrics"
	"github.com/sarchlab/music/runtime"
	"github.com/sarchlab/music/scheduler"
	"github.com/sarchlab/music/substrate"
	"github.com/tebeka/atexit"
)

const elementSize = 4 // one uint32 per sample

func main() {
	engine := sim.NewSerialEngine()
	producerPort, consumerPort := substrate.NewPair(engine, 1*sim.GHz, nil, nil, "producer.out", "consumer.in")

	lookup := config.Static{"tick_interval_ms": 1}
	reg := prometheus.NewRegistry()

	producerSetup := runtime.NewSetup(lookup, metrics.New(reg))
	producerSetup.PublishContOutput("out")

	consumerSetup := runtime.NewSetup(lookup, metrics.New(prometheus.NewRegistry()))
	consumerSetup.PublishContInput("in")

	tickInterval := time.Millisecond
	producer := runtime.New(producerSetup, tickInterval)
	consumer := runtime.New(consumerSetup, tickInterval)

	fibo := buffer.NewFIBO(elementSize)
	bifo := buffer.NewBIFO(elementSize, 64)

	out := connector.NewContinuousOutput(producerPort, consumerPort, producerPort, fibo)
	in := connector.NewContinuousInput(producerPort, consumerPort, consumerPort, bifo)

	base := clock.New(int64(time.Second), tickInterval.Nanoseconds())
	producer.AddConnector(out, scheduler.NewSConnection(base, 0, 4), connector.Output)
	consumer.AddConnector(in, scheduler.NewSConnection(base, 0, 4), connector.Input)

	const length = 8
	produced := make([]uint32, length)
	for i := range produced {
		produced[i] = uint32(i + 1)
		encode(fibo.Insert(), produced[i])
		producer.Tick()
		consumer.Tick()
		engine.Run()
	}
	producer.Finalize()
	consumer.Finalize()
	engine.Run()

	collected := make([]uint32, 0, length)
	for !bifo.IsEmpty() {
		collected = append(collected, decode(bifo.Next()))
	}

	fmt.Println("sent:", produced)
	fmt.Println("received:", collected)

	atexit.Exit(0)
}

func encode(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func decode(src []byte) uint32 {
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}
