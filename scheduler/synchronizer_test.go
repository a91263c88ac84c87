package scheduler_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/clock"
	"github.com/sarchlab/music/scheduler"
)

func countFires(sc *scheduler.SConnection, base clock.Clock, ticks int64, output bool) int {
	t := base
	count := 0
	for i := int64(0); i < ticks; i++ {
		var fire bool
		if output {
			fire = sc.TickOutput(t)
		} else {
			fire = sc.TickInput(t)
		}
		if fire {
			count++
		}
		t = t.Tick()
	}
	return count
}

var _ = Describe("SConnection", func() {
	base := clock.New(1000, 10)

	It("fires on the very first tick", func() {
		sc := scheduler.NewSConnection(base, 0, 1)
		Expect(sc.TickOutput(base)).To(BeTrue())
	})

	It("fires strictly less often as maxBuffered grows", func() {
		lowBuffer := scheduler.NewSConnection(base, 50, 1)
		highBuffer := scheduler.NewSConnection(base, 50, 10)

		lowCount := countFires(lowBuffer, base, 200, true)
		highCount := countFires(highBuffer, base, 200, true)

		Expect(highCount).To(BeNumerically("<", lowCount))
	})

	It("fires on both the output and the input side", func() {
		sc := scheduler.NewSConnection(base, 20, 2)
		outFires := countFires(sc, base, 50, true)
		Expect(outFires).To(BeNumerically(">", 0))

		sc2 := scheduler.NewSConnection(base, 20, 2)
		inFires := countFires(sc2, base, 50, false)
		Expect(inFires).To(BeNumerically(">", 0))
	})
})
