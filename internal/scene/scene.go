// Package scene is the top-level controller: it owns one instance of every
// generation component and exposes them to the host loop and control panel.
package scene

import (
	"errors"
	"log/slog"
	"time"

	"stellate/internal/core"
	"stellate/internal/logging"
	"stellate/internal/mesh"
	"stellate/internal/metrics"
	"stellate/internal/params"
	"stellate/internal/scheduler"
)

// Recorder counts parameter requests by kind and result.
type Recorder interface {
	ObserveRequest(kind, result string)
}

// Scene wires the store, gate, scheduler and mesh registry together. All of
// its methods must be called from the host's update goroutine.
type Scene struct {
	log       *slog.Logger
	clock     func() time.Time
	notifier  core.Notifier
	recorder  Recorder
	listeners []core.MeshListener

	store    *params.Store
	gate     *params.Gate
	sched    *scheduler.Scheduler
	registry *mesh.Registry
	colors   *mesh.ColorCycler
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scene) { s.log = log }
}

// WithClock overrides the time source used by panel setters.
func WithClock(clock func() time.Time) Option {
	return func(s *Scene) { s.clock = clock }
}

// WithNotifier sets where busy notices go.
func WithNotifier(n core.Notifier) Option {
	return func(s *Scene) { s.notifier = n }
}

// WithRecorder sets the request recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Scene) { s.recorder = r }
}

// WithListener subscribes l to mesh events.
func WithListener(l core.MeshListener) Option {
	return func(s *Scene) { s.listeners = append(s.listeners, l) }
}

// New builds a scene committed to initial. The first Tick starts generating.
func New(initial params.Config, opts ...Option) *Scene {
	s := &Scene{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.NewNop()
	}
	s.colors = mesh.NewColorCycler()
	s.registry = mesh.NewRegistry(s.colors, s.listeners...)
	s.sched = scheduler.New(s.registry)
	s.store = params.NewStore(initial)
	s.gate = params.NewGate(s.store, s.sched, s.notifier)
	return s
}

// Tick advances generation by at most one unit. An idle scheduler with a
// pending request starts the new regeneration instead.
func (s *Scene) Tick(now time.Time) error {
	if s.sched.Idle() {
		if !s.gate.TakePending() {
			return nil
		}
		cfg := s.store.Config()
		if err := s.sched.Start(now, cfg); err != nil {
			return err
		}
		s.log.Info("regeneration started",
			"size", cfg.Size,
			"stellation", cfg.Stellation,
			"epoch", cfg.Epoch,
			"step_delay_ms", cfg.StepDelay,
			"estimate", cfg.Estimate(),
		)
		return nil
	}
	if err := s.sched.Tick(now); err != nil {
		s.log.Error("generation failed", "error", err)
		return err
	}
	if s.sched.Idle() {
		s.log.Info("regeneration complete",
			"triangles", s.sched.Emitted(),
			"elapsed", now.Sub(s.sched.StartedAt()),
		)
	}
	return nil
}

// Request routes a single parameter change through the gate.
func (s *Scene) Request(f params.Field, value float64) error {
	return s.observe(string(f), s.gate.Request(s.clock(), f, value))
}

// Reset routes the reset control through the gate.
func (s *Scene) Reset() error {
	return s.observe("reset", s.gate.Reset(s.clock()))
}

// Regenerate asks for a rebuild with the committed parameters.
func (s *Scene) Regenerate() error {
	return s.observe("regenerate", s.gate.Regenerate(s.clock()))
}

func (s *Scene) observe(kind string, err error) error {
	result := metrics.ResultAccepted
	switch {
	case errors.Is(err, params.ErrBusy):
		result = metrics.ResultBusy
		s.log.Warn("change rejected", "kind", kind, "error", err)
	case errors.Is(err, params.ErrInvalidConfig):
		result = metrics.ResultInvalid
		s.log.Warn("invalid change", "kind", kind, "error", err)
	case err == nil:
		s.log.Debug("change accepted", "kind", kind, "config", s.store.Config().String())
	}
	if s.recorder != nil {
		s.recorder.ObserveRequest(kind, result)
	}
	return err
}

// Config returns the committed parameters.
func (s *Scene) Config() params.Config { return s.store.Config() }

// Entries returns the visible mesh for drawing.
func (s *Scene) Entries() []mesh.Entry { return s.registry.Entries() }

// State returns the scheduler's progress.
func (s *Scene) State() scheduler.State { return s.sched.State() }

// LevelCounts returns faces emitted per level by the current or last
// regeneration.
func (s *Scene) LevelCounts() []int { return s.sched.LevelCounts() }

// Busy reports whether a change requested now would be refused.
func (s *Scene) Busy() bool { return s.gate.Busy(s.clock()) }

// Settled reports whether nothing is drawing and nothing is waiting to start.
func (s *Scene) Settled() bool { return s.sched.Idle() && !s.gate.Pending() }

// Estimate reports the duration estimate of the last regeneration.
func (s *Scene) Estimate() time.Duration { return s.sched.Estimate() }
