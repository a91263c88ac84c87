package scheduler

import "github.com/sarchlab/music/connector"

// LumpConnectors fuses connectors that share a fusion key (same remote
// leader, direction, and proxy status) into a single *connector.Connector
// carrying every fused connector's subconnectors, with IDFlag OR-ed
// together. Connectors are returned in first-seen order; fusion never
// reorders across keys, only merges within one.
func LumpConnectors(cs []*connector.Connector) []*connector.Connector {
	fused := make([]*connector.Connector, 0, len(cs))

	for _, c := range cs {
		target := -1
		for i, f := range fused {
			if f.Info.Fuses(c.Info) {
				target = i
				break
			}
		}

		if target == -1 {
			fused = append(fused, connector.New(c.Info, c.Subconnectors()...))
			continue
		}

		for _, sub := range c.Subconnectors() {
			fused[target].Add(sub)
		}
		fused[target].Info.IDFlag |= c.Info.IDFlag
	}

	return fused
}
