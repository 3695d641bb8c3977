package scene

import "time"

// Clock turns frame timestamps into per-tick deltas.
type Clock struct {
	elapsed float64
	last    time.Duration
	started bool
}

// Tick records now and returns the seconds since the previous tick. The
// first tick returns 0. Timestamps are expected to be monotonic.
func (c *Clock) Tick(now time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := (now - c.last).Seconds()
	c.last = now
	c.elapsed += dt
	return dt
}

// Elapsed returns the sum of all deltas returned so far.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Reset forgets the previous timestamp.
func (c *Clock) Reset() { *c = Clock{} }
