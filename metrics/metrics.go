// Package metrics exposes prometheus instruments for a running
// co-simulation job: ticks processed, buffer occupancy, underrun counts,
// and scheduled-event volume. A nil *Registry disables collection
// entirely — every method on a nil *Registry is a no-op, so callers never
// need to branch on whether metrics are enabled.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds every instrument one program's runtime reports through.
// Construct with New and pass the result (or nil) into runtime.NewSetup.
type Registry struct {
	reg *prometheus.Registry

	ticksProcessed  prometheus.Counter
	fiboOccupancy   prometheus.Gauge
	bifoOccupancy   prometheus.Gauge
	underrunCount   prometheus.Counter
	scheduledEvents prometheus.Counter
}

// New builds a Registry and registers its instruments with reg.
func New(reg *prometheus.Registry) *Registry {
	r := &Registry{
		reg: reg,
		ticksProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "music_ticks_processed_total",
			Help: "Number of local clock ticks processed by this program.",
		}),
		fiboOccupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "music_fibo_occupancy_bytes",
			Help: "Bytes currently staged across this program's FIBOs.",
		}),
		bifoOccupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "music_bifo_occupancy_bytes",
			Help: "Bytes currently buffered across this program's BIFOs.",
		}),
		underrunCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "music_underrun_total",
			Help: "Number of BIFO underruns observed by this program.",
		}),
		scheduledEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "music_scheduled_events_total",
			Help: "Number of (time, connector) entries executed by the scheduler.",
		}),
	}
	reg.MustRegister(r.ticksProcessed, r.fiboOccupancy, r.bifoOccupancy, r.underrunCount, r.scheduledEvents)
	return r
}

// TickProcessed records that the local clock advanced by one tick.
func (r *Registry) TickProcessed() {
	if r == nil {
		return
	}
	r.ticksProcessed.Inc()
}

// SetFIBOOccupancy records the current total bytes staged across FIBOs.
func (r *Registry) SetFIBOOccupancy(bytes int) {
	if r == nil {
		return
	}
	r.fiboOccupancy.Set(float64(bytes))
}

// SetBIFOOccupancy records the current total bytes buffered across BIFOs.
func (r *Registry) SetBIFOOccupancy(bytes int) {
	if r == nil {
		return
	}
	r.bifoOccupancy.Set(float64(bytes))
}

// UnderrunObserved records one BIFO underrun.
func (r *Registry) UnderrunObserved() {
	if r == nil {
		return
	}
	r.underrunCount.Inc()
}

// EventScheduled records one executed scheduler plan entry.
func (r *Registry) EventScheduled() {
	if r == nil {
		return
	}
	r.scheduledEvents.Inc()
}
