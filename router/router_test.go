package router_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/router"
)

// Both backends must agree on dispatch semantics: only handlers whose
// interval contains the event's global id fire, exactly once each.
var _ = DescribeTable("Router backends",
	func(backend router.Backend) {
		r := router.New(backend)

		var gotA, gotB []int
		r.InsertRoutingData(index.NewInterval(0, 5, 0),
			router.NewGlobalInputRoutingData(func(t float64, id int) { gotA = append(gotA, id) }))
		r.InsertRoutingData(index.NewInterval(3, 10, 0),
			router.NewGlobalInputRoutingData(func(t float64, id int) { gotB = append(gotB, id) }))
		r.Build()

		for id := 0; id < 10; id++ {
			r.ProcessEvent(float64(id), id)
		}

		Expect(gotA).To(Equal([]int{0, 1, 2, 3, 4}))
		Expect(gotB).To(Equal([]int{3, 4, 5, 6, 7, 8, 9}))
	},
	Entry("table backend", router.Table),
	Entry("tree backend", router.Tree),
)

var _ = DescribeTable("Router backends translate local-indexed handlers",
	func(backend router.Backend) {
		r := router.New(backend)

		var got []int
		iv := index.NewInterval(10, 15, 100)
		r.InsertRoutingData(iv, router.NewLocalInputRoutingData(iv, func(t float64, id int) { got = append(got, id) }))
		r.Build()

		for id := 10; id < 15; id++ {
			r.ProcessEvent(0, id)
		}

		Expect(got).To(Equal([]int{100, 101, 102, 103, 104}))
	},
	Entry("table backend", router.Table),
	Entry("tree backend", router.Tree),
)

var _ = DescribeTable("Router backends panic on misuse",
	func(backend router.Backend) {
		r := router.New(backend)
		r.Build()
		Expect(func() {
			r.InsertRoutingData(index.NewInterval(0, 1, 0), router.NewGlobalInputRoutingData(func(float64, int) {}))
		}).To(Panic())
	},
	Entry("table backend", router.Table),
	Entry("tree backend", router.Tree),
)

var _ = Describe("Tree backend", func() {
	It("handles many overlapping intervals without missing any match", func() {
		r := router.New(router.Tree)

		counts := make([]int, 200)
		for base := 0; base < 200; base += 7 {
			end := base + 20
			if end > 200 {
				end = 200
			}
			b := base
			r.InsertRoutingData(index.NewInterval(b, end, 0),
				router.NewGlobalInputRoutingData(func(t float64, id int) { counts[id]++ }))
		}
		r.Build()

		for id := 0; id < 200; id++ {
			r.ProcessEvent(0, id)
		}

		for id := 0; id < 200; id++ {
			expected := 0
			for base := 0; base < 200; base += 7 {
				end := base + 20
				if end > 200 {
					end = 200
				}
				if id >= base && id < end {
					expected++
				}
			}
			Expect(counts[id]).To(Equal(expected), "id %d", id)
		}
	})
})
