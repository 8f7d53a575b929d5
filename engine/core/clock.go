package core

import "time"

// Clock measures wall time between engine ticks, in seconds.
type Clock struct {
	now       func() time.Time
	startTime time.Time
	running   bool
	elapsed   float64
	last      float64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockWithSource is NewClock with an injectable time source.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.last = c.elapsed
		c.elapsed = c.now().Sub(c.startTime).Seconds()
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.running = true
	c.elapsed = 0
	c.last = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Delta is the time between the last two updates.
func (c *Clock) Delta() float64 {
	return c.elapsed - c.last
}
