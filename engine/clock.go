package engine

import (
	"time"

	"github.com/lixenwraith/snowcat/parameter"
)

// TickClock is the simulation clock: time advances only when the loop ticks,
// so every timer expressed against it is deterministic and testable
type TickClock struct {
	tick     int64
	interval time.Duration
}

// NewTickClock creates a clock advancing interval per tick
func NewTickClock(interval time.Duration) *TickClock {
	if interval <= 0 {
		interval = parameter.FrameDuration
	}
	return &TickClock{interval: interval}
}

// Advance moves the clock one tick forward and returns the new tick
func (c *TickClock) Advance() int64 {
	c.tick++
	return c.tick
}

// Tick returns the current tick
func (c *TickClock) Tick() int64 {
	return c.tick
}

// Now returns elapsed simulated time
func (c *TickClock) Now() time.Duration {
	return time.Duration(c.tick) * c.interval
}

// Ticks converts a duration into whole ticks, rounding to nearest
func (c *TickClock) Ticks(d time.Duration) int64 {
	return int64((d + c.interval/2) / c.interval)
}

// Interval returns duration of one tick
func (c *TickClock) Interval() time.Duration {
	return c.interval
}
