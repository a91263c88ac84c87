package substrate

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"
)

// NewPair builds two ports, owned by srcComp and dstComp respectively, and
// wires them together with a direct connection. It is the one place
// samples and tests build the akita plumbing a pair of subconnectors rides
// on, rather than each repeating the builder chain.
func NewPair(engine sim.Engine, freq sim.Freq, srcComp, dstComp sim.Component, srcName, dstName string) (sim.Port, sim.Port) {
	src := sim.NewLimitNumMsgPort(srcComp, 1, srcName)
	dst := sim.NewLimitNumMsgPort(dstComp, 1, dstName)

	conn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		Build(srcName + "-to-" + dstName)

	conn.PlugIn(src)
	conn.PlugIn(dst)

	return src, dst
}
