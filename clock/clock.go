// Package clock implements the integer-tick clock model shared by every
// program in a co-simulation job.
package clock

import "fmt"

// Ticks is a count of clock ticks.
type Ticks int64

// Clock is a (timebase, tickInterval, tickCount) triple over integer ticks.
// Wall time is tickCount*tickInterval/timebase. All clocks that take part in
// the same job share a timebase so that times across programs compare as
// plain integers.
type Clock struct {
	timebase     int64
	tickInterval int64
	tickCount    Ticks
}

// New creates a Clock with the given timebase and tick interval, both
// expressed in ticks of the timebase. Both must be strictly positive.
func New(timebase, tickInterval int64) Clock {
	if timebase <= 0 {
		panic(fmt.Sprintf("clock: timebase must be positive, got %d", timebase))
	}
	if tickInterval <= 0 {
		panic(fmt.Sprintf("clock: tickInterval must be positive, got %d", tickInterval))
	}
	return Clock{timebase: timebase, tickInterval: tickInterval}
}

// Timebase returns the integer scale shared by every clock in the job.
func (c Clock) Timebase() int64 { return c.timebase }

// TickInterval returns the number of timebase units per tick of this clock.
func (c Clock) TickInterval() int64 { return c.tickInterval }

// TickCount returns the number of ticks elapsed since the clock started.
func (c Clock) TickCount() Ticks { return c.tickCount }

// IntegerTime returns the current time as an integer number of timebase
// units: tickCount * tickInterval.
func (c Clock) IntegerTime() int64 { return int64(c.tickCount) * c.tickInterval }

// Time returns the current time in seconds (or whatever unit the timebase
// was chosen to represent).
func (c Clock) Time() float64 {
	return float64(c.IntegerTime()) / float64(c.timebase)
}

// Tick advances the clock by exactly one tick.
func (c Clock) Tick() Clock {
	c.tickCount++
	return c
}

// Ticks advances the clock by n ticks. n may be negative only to rewind a
// clock that has not yet been observed externally (used by the scheduler to
// roll back a tentative advance).
func (c Clock) Ticks(n int64) Clock {
	c.tickCount += Ticks(n)
	return c
}

// Reset returns the clock to tick zero, keeping timebase and tickInterval.
func (c Clock) Reset() Clock {
	c.tickCount = 0
	return c
}

// Before reports whether c is strictly earlier than other.
func (c Clock) Before(other Clock) bool { return c.IntegerTime() < other.IntegerTime() }

// After reports whether c is strictly later than other.
func (c Clock) After(other Clock) bool { return c.IntegerTime() > other.IntegerTime() }

// Equal reports whether c and other represent the same integer time.
func (c Clock) Equal(other Clock) bool { return c.IntegerTime() == other.IntegerTime() }

// FloorToTick returns the largest multiple of tickInterval that is less than
// or equal to t (both expressed in timebase units).
func (c Clock) FloorToTick(t int64) int64 {
	if t >= 0 {
		return (t / c.tickInterval) * c.tickInterval
	}
	// round toward negative infinity for negative t
	q := t / c.tickInterval
	if t%c.tickInterval != 0 {
		q--
	}
	return q * c.tickInterval
}
