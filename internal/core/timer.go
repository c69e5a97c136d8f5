package core

import "time"

// Pacer spaces units of work by a fixed delay. Timestamps come from the host
// so that callers (and tests) decide what "now" is.
type Pacer struct {
	delay time.Duration
	due   time.Time
}

// NewPacer constructs a Pacer with the given delay between units. Negative
// delays are treated as zero.
func NewPacer(delay time.Duration) *Pacer {
	p := &Pacer{}
	p.SetDelay(delay)
	return p
}

// SetDelay changes the spacing applied by the next Arm.
func (p *Pacer) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	p.delay = delay
}

// Delay reports the configured spacing.
func (p *Pacer) Delay() time.Duration { return p.delay }

// Ready reports whether the next unit of work may run at now.
func (p *Pacer) Ready(now time.Time) bool {
	return p.due.IsZero() || !now.Before(p.due)
}

// Arm records that a unit ran at now; the next one is due one delay later.
func (p *Pacer) Arm(now time.Time) {
	p.due = now.Add(p.delay)
}

// Clear makes the pacer immediately ready.
func (p *Pacer) Clear() {
	p.due = time.Time{}
}
