package spatial_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/music/index"
	"github.com/sarchlab/music/spatial"
)

var _ = Describe("Negotiate", func() {
	// S2: producer (2 procs, [0,10) split [0,5)/[5,10)), consumer (3
	// procs, [0,10) split [0,4)/[4,7)/[7,10)). Of the six rank pairs, four
	// overlap: [0,4), [4,5), [5,7) and [7,10).
	It("produces the four non-empty pairwise intersections for S2's layout", func() {
		producer := index.NewLinear(index.Global)
		producer.Add(0, index.NewInterval(0, 5, 0))
		producer.Add(1, index.NewInterval(5, 10, 0))

		consumer := index.NewLinear(index.Global)
		consumer.Add(0, index.NewInterval(0, 4, 0))
		consumer.Add(1, index.NewInterval(4, 7, 0))
		consumer.Add(2, index.NewInterval(7, 10, 0))

		result := spatial.Negotiate(producer, consumer)

		total := 0
		for _, ris := range result.ProducerRouting {
			total += len(ris)
		}
		Expect(total).To(Equal(4))

		Expect(result.ProducerRouting[0]).To(HaveLen(2)) // -> consumer 0, 1
		Expect(result.ProducerRouting[1]).To(HaveLen(2)) // -> consumer 1, 2

		Expect(result.ConsumerRouting[0]).To(HaveLen(1)) // <- producer 0
		Expect(result.ConsumerRouting[1]).To(HaveLen(2)) // <- producer 0, 1
		Expect(result.ConsumerRouting[2]).To(HaveLen(1)) // <- producer 1

		Expect(spatial.VerifyPartition(producer, result.ProducerRouting)).To(Succeed())
		Expect(spatial.VerifyPartition(consumer, result.ConsumerRouting)).To(Succeed())
	})

	It("routes every index to the consumer rank that owns it", func() {
		producer := index.NewLinear(index.Global)
		producer.Add(0, index.NewInterval(0, 5, 0))
		producer.Add(1, index.NewInterval(5, 10, 0))

		consumer := index.NewLinear(index.Global)
		consumer.Add(0, index.NewInterval(0, 4, 0))
		consumer.Add(1, index.NewInterval(4, 7, 0))
		consumer.Add(2, index.NewInterval(7, 10, 0))

		result := spatial.Negotiate(producer, consumer)

		ownerOf := func(i int) int {
			switch {
			case i < 4:
				return 0
			case i < 7:
				return 1
			default:
				return 2
			}
		}

		for globalID := 0; globalID < 10; globalID++ {
			found := false
			for _, ris := range result.ProducerRouting {
				for _, ri := range ris {
					if ri.Interval.Contains(globalID) {
						Expect(ri.RemoteRank).To(Equal(ownerOf(globalID)))
						found = true
					}
				}
			}
			Expect(found).To(BeTrue(), "index %d must be routed", globalID)
		}
	})

	It("translates the overlap into the remote rank's local numbering", func() {
		producer := index.NewLinear(index.Global)
		producer.Add(0, index.NewInterval(0, 10, 100)) // rank-local base 100

		consumer := index.NewLinear(index.Global)
		consumer.Add(0, index.NewInterval(3, 8, 50)) // rank-local base 50

		result := spatial.Negotiate(producer, consumer)

		Expect(result.ProducerRouting[0]).To(HaveLen(1))
		ri := result.ProducerRouting[0][0]
		Expect(ri.Interval.Begin).To(Equal(3))
		Expect(ri.Interval.End).To(Equal(8))
		Expect(ri.Interval.LocalBase).To(Equal(50)) // consumer's local base at overlap start
	})
})
