package params

import (
	"fmt"
	"time"

	"stellate/internal/core"
)

// BusyNotice is the message shown when a change arrives mid-draw.
const BusyNotice = "Please wait until the fractal has finished drawing!"

// Tracker reports when the last regeneration started and how long it was
// estimated to take.
type Tracker interface {
	StartedAt() time.Time
	Estimate() time.Duration
}

// Gate admits parameter changes only once the estimated duration of the last
// regeneration has elapsed. Elapsed wall-clock time is authoritative; an
// admitted change raises the pending flag and the caller starts the new
// regeneration once the current one has run out.
type Gate struct {
	store    *Store
	tracker  Tracker
	notifier core.Notifier
	pending  bool
}

// NewGate constructs a gate over store. The pending flag starts raised so the
// first idle tick builds the initial mesh.
func NewGate(store *Store, tracker Tracker, notifier core.Notifier) *Gate {
	return &Gate{store: store, tracker: tracker, notifier: notifier, pending: true}
}

// Busy reports whether a request at now would be refused.
func (g *Gate) Busy(now time.Time) bool {
	if g.tracker == nil {
		return false
	}
	started := g.tracker.StartedAt()
	if started.IsZero() {
		return false
	}
	return now.Sub(started) < g.tracker.Estimate()
}

// Request commits field=value if the value is valid and the gate is open.
func (g *Gate) Request(now time.Time, f Field, value float64) error {
	next, err := g.store.Config().With(f, value)
	if err != nil {
		return err
	}
	return g.admit(now, string(f), next)
}

// Reset commits the store's reset values as one change.
func (g *Gate) Reset(now time.Time) error {
	next := g.store.ResetValues()
	if err := next.Validate(); err != nil {
		return err
	}
	return g.admit(now, "reset", next)
}

// Regenerate asks for a rebuild with the committed parameters.
func (g *Gate) Regenerate(now time.Time) error {
	return g.admit(now, "regenerate", g.store.Config())
}

// Pending reports whether a regeneration has been admitted but not started.
func (g *Gate) Pending() bool { return g.pending }

// TakePending clears the pending flag, reporting whether it was raised.
func (g *Gate) TakePending() bool {
	p := g.pending
	g.pending = false
	return p
}

func (g *Gate) admit(now time.Time, kind string, next Config) error {
	if g.Busy(now) {
		if g.notifier != nil {
			g.notifier.Notify(BusyNotice)
		}
		return fmt.Errorf("%s: %w", kind, ErrBusy)
	}
	g.store.commit(next)
	g.pending = true
	return nil
}
