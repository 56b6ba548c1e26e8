package quiz

// Clock is the per-question countdown. It counts whole time units from the
// question duration down to zero and stops the instant an answer is recorded
// (Freeze). OnExpire fires exactly once per armed period, the first time the
// count reaches zero while unfrozen.
//
// Clock is not safe for concurrent use; the owning session serializes access.
type Clock struct {
	remaining int
	frozen    bool
	expired   bool
	onExpire  func()
}

// NewClock returns a clock armed with duration units. onExpire may be nil.
func NewClock(duration int, onExpire func()) *Clock {
	return &Clock{remaining: duration, onExpire: onExpire}
}

// Tick decrements the remaining time by one unit if the clock is running and
// above zero; otherwise it is a no-op. Reaching zero fires OnExpire once.
func (c *Clock) Tick() {
	if c.frozen || c.remaining <= 0 {
		return
	}
	c.remaining--
	if c.remaining == 0 && !c.expired {
		c.expired = true
		if c.onExpire != nil {
			c.onExpire()
		}
	}
}

// Freeze stops the countdown; called when an answer (or the timeout) is
// recorded so the remaining time is fixed for scoring.
func (c *Clock) Freeze() { c.frozen = true }

// Reset re-arms the clock for the next question.
func (c *Clock) Reset(duration int) {
	c.remaining = duration
	c.frozen = false
	c.expired = false
}

// Remaining reports the time units left for the active question.
func (c *Clock) Remaining() int { return c.remaining }
