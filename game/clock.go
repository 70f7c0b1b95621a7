package game

import "time"

// Clock is a pause-aware countdown. While stopped it holds a snapshot of the
// remaining time; resuming schedules a fresh end time from that snapshot so
// the stopped interval is never charged.
type Clock struct {
	now       func() time.Time
	budget    time.Duration
	start     time.Time
	end       time.Time
	remaining time.Duration
	stopped   bool
}

func NewClock(budget time.Duration, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, budget: budget}
}

// Start begins a full countdown.
func (c *Clock) Start() {
	c.start = c.now()
	c.end = c.start.Add(c.budget)
	c.remaining = c.budget
	c.stopped = false
}

// Stop freezes the countdown. Stopping twice keeps the first snapshot.
func (c *Clock) Stop() {
	if c.stopped {
		return
	}
	c.remaining = c.live()
	c.stopped = true
}

// Resume restarts a stopped countdown from its snapshot.
func (c *Clock) Resume() {
	if !c.stopped {
		return
	}
	c.end = c.now().Add(c.remaining)
	c.stopped = false
}

func (c *Clock) Remaining() time.Duration {
	if c.stopped {
		return c.remaining
	}
	return c.live()
}

func (c *Clock) Expired() bool {
	return c.Remaining() <= 0
}

func (c *Clock) Stopped() bool {
	return c.stopped
}

func (c *Clock) Now() time.Time {
	return c.now()
}

func (c *Clock) live() time.Duration {
	left := c.end.Sub(c.now())
	if left < 0 {
		return 0
	}
	return left
}
