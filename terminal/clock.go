package terminal

import "time"

// FrameClock paces a fixed-rate render loop
type FrameClock struct {
	start  time.Time
	next   time.Time
	period time.Duration
	frame  uint64

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock creates a clock targeting fps frames per second; fps <= 0 means 60
func NewFrameClock(fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	now := time.Now()
	period := time.Second / time.Duration(fps)
	return &FrameClock{
		start:  now,
		next:   now.Add(period),
		period: period,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Elapsed returns seconds since the clock was created
func (c *FrameClock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}

// Period returns the frame budget
func (c *FrameClock) Period() time.Duration {
	return c.period
}

// Frame returns the number of completed Wait calls
func (c *FrameClock) Frame() uint64 {
	return c.frame
}

// Wait sleeps until the current frame's budget is spent.
// A frame that overran resynchronises instead of bursting to catch up.
func (c *FrameClock) Wait() {
	now := c.now()
	if d := c.next.Sub(now); d > 0 {
		c.sleep(d)
		c.next = c.next.Add(c.period)
	} else {
		c.next = now.Add(c.period)
	}
	c.frame++
}
