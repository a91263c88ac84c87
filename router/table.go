package router

import "github.com/sarchlab/music/index"

// tableRouter expands every interval into explicit per-id vectors keyed on
// the absolute global id: O(1 + k) dispatch, memory proportional to the
// total span of all intervals. Mandatory for COLLECTIVE ports, since
// insertion is then the complete producer-side processing.
type tableRouter struct {
	byID  map[int][]RoutingData
	built bool
}

func newTableRouter() *tableRouter {
	return &tableRouter{byID: map[int][]RoutingData{}}
}

func (t *tableRouter) InsertRoutingData(iv index.Interval, data RoutingData) {
	if t.built {
		panic("router: InsertRoutingData called after Build")
	}
	for id := iv.Begin; id < iv.End; id++ {
		t.byID[id] = append(t.byID[id], data)
	}
}

// Build marks the table immutable. Table has nothing to precompute, but
// Build is still required so both backends share the same lifecycle.
func (t *tableRouter) Build() {
	t.built = true
}

func (t *tableRouter) ProcessEvent(tm float64, id int) {
	for _, data := range t.byID[id] {
		data.Process(tm, id)
	}
}
