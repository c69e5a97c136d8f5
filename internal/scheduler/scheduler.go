// Package scheduler expands the fractal breadth-first, one face per step, so
// the host frame loop keeps running while the mesh grows.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"stellate/internal/core"
	"stellate/internal/fractal"
	"stellate/internal/params"
)

// ErrRunning is returned by Start while a regeneration is still drawing.
var ErrRunning = errors.New("scheduler: regeneration already running")

// Phase is the scheduler's coarse state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSeeding
	PhaseSubdividing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSeeding:
		return "seeding"
	case PhaseSubdividing:
		return "subdividing"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Sink receives the scheduler's output.
type Sink interface {
	BeginRegeneration()
	Add(t core.Triangle)
}

// State is a read-only snapshot of the generation progress.
type State struct {
	Phase           Phase
	Level           int
	Epoch           int
	FrontierSize    int
	FrontierIndex   int
	RemainingEpochs int
	Emitted         int
}

// Scheduler is the generation state machine. Tick advances it by at most one
// unit of work: the four seed faces at once, or one child face.
type Scheduler struct {
	sink  Sink
	pacer *core.Pacer
	cfg   params.Config

	phase     Phase
	level     int
	remaining int
	frontier  []core.Triangle
	index     int
	next      []core.Triangle

	batch    [fractal.Branching]core.Triangle
	batchPos int

	startedAt time.Time
	estimate  time.Duration
	emitted   int
	levels    []int
}

// New returns an idle scheduler emitting into sink.
func New(sink Sink) *Scheduler {
	return &Scheduler{sink: sink, pacer: core.NewPacer(0), batchPos: fractal.Branching}
}

// Start clears the sink and prepares a regeneration with cfg. The seed is
// emitted by the next Tick.
func (s *Scheduler) Start(now time.Time, cfg params.Config) error {
	if s.phase != PhaseIdle {
		return ErrRunning
	}
	s.sink.BeginRegeneration()

	s.cfg = cfg
	s.phase = PhaseSeeding
	s.level = 0
	s.remaining = cfg.Epoch
	s.frontier = nil
	s.index = 0
	s.next = nil
	s.batchPos = fractal.Branching
	s.emitted = 0
	s.levels = s.levels[:0]

	s.startedAt = now
	s.estimate = cfg.Estimate()
	s.pacer.SetDelay(cfg.StepDelayDuration())
	s.pacer.Clear()
	return nil
}

// Tick performs the next unit of work if one is due at now.
func (s *Scheduler) Tick(now time.Time) error {
	if s.phase == PhaseIdle || !s.pacer.Ready(now) {
		return nil
	}
	var err error
	switch s.phase {
	case PhaseSeeding:
		s.seed()
	case PhaseSubdividing:
		err = s.step()
	}
	if err != nil {
		s.halt()
		return err
	}
	s.pacer.Arm(now)
	return nil
}

func (s *Scheduler) seed() {
	faces := fractal.Seed(s.cfg.Size)
	s.levels = append(s.levels, 0)
	for _, t := range faces {
		s.emit(t)
	}
	s.remaining--
	if s.cfg.Epoch <= 1 {
		s.halt()
		return
	}
	s.frontier = faces[:]
	s.next = make([]core.Triangle, 0, len(faces)*fractal.Branching)
	s.phase = PhaseSubdividing
	s.level = 1
	s.levels = append(s.levels, 0)
}

func (s *Scheduler) step() error {
	if s.batchPos == fractal.Branching {
		parent := s.frontier[s.index]
		children, err := fractal.Subdivide(parent, s.cfg.Stellation)
		if err != nil {
			return fmt.Errorf("subdivide level %d face %d: %w", s.level, s.index, err)
		}
		s.index++
		s.batch = children
		s.batchPos = 0
		s.next = append(s.next, children[:]...)
	}

	s.emit(s.batch[s.batchPos])
	s.batchPos++

	if s.batchPos < fractal.Branching || s.index < len(s.frontier) {
		return nil
	}
	s.remaining--
	if s.level >= s.cfg.Epoch-1 {
		s.halt()
		return nil
	}
	s.frontier = s.next
	s.next = make([]core.Triangle, 0, len(s.frontier)*fractal.Branching)
	s.index = 0
	s.level++
	s.levels = append(s.levels, 0)
	return nil
}

func (s *Scheduler) emit(t core.Triangle) {
	s.sink.Add(t)
	s.emitted++
	s.levels[len(s.levels)-1]++
}

func (s *Scheduler) halt() {
	s.phase = PhaseIdle
	s.frontier = nil
	s.next = nil
	s.index = 0
	s.batchPos = fractal.Branching
}

// Idle reports whether no regeneration is in progress.
func (s *Scheduler) Idle() bool { return s.phase == PhaseIdle }

// Phase reports the current phase.
func (s *Scheduler) Phase() Phase { return s.phase }

// StartedAt reports when the last regeneration started; zero before the first.
func (s *Scheduler) StartedAt() time.Time { return s.startedAt }

// Estimate reports the duration estimate captured when the last regeneration
// started.
func (s *Scheduler) Estimate() time.Duration { return s.estimate }

// Emitted reports how many faces the current or last regeneration produced.
func (s *Scheduler) Emitted() int { return s.emitted }

// LevelCounts reports faces emitted per level; index 0 is the seed.
func (s *Scheduler) LevelCounts() []int {
	out := make([]int, len(s.levels))
	copy(out, s.levels)
	return out
}

// Config reports the parameters of the current or last regeneration.
func (s *Scheduler) Config() params.Config { return s.cfg }

// State returns a snapshot of the progress.
func (s *Scheduler) State() State {
	return State{
		Phase:           s.phase,
		Level:           s.level,
		Epoch:           s.cfg.Epoch,
		FrontierSize:    len(s.frontier),
		FrontierIndex:   s.index,
		RemainingEpochs: s.remaining,
		Emitted:         s.emitted,
	}
}
