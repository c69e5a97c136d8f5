package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stellate/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTracker struct {
	started  time.Time
	estimate time.Duration
}

func (f *fakeTracker) StartedAt() time.Time    { return f.started }
func (f *fakeTracker) Estimate() time.Duration { return f.estimate }

func TestDefaultsAndReset(t *testing.T) {
	assert.Equal(t, Config{Size: 50, Stellation: 1, Epoch: 3, StepDelay: 0}, DefaultConfig())
	assert.Equal(t, Config{Size: 50, Stellation: 1, Epoch: 5, StepDelay: 0}, ResetConfig())
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, ResetConfig().Validate())
}

func TestEstimate(t *testing.T) {
	cases := []struct {
		epoch int
		delay float64
		want  time.Duration
	}{
		{epoch: 1, delay: 0, want: 0},
		{epoch: 1, delay: 50, want: 150 * time.Millisecond},
		{epoch: 3, delay: 100, want: 2700 * time.Millisecond},
		{epoch: 4, delay: 50, want: 4050 * time.Millisecond},
		{epoch: 6, delay: 200, want: 145800 * time.Millisecond},
	}
	for _, tc := range cases {
		c := Config{Size: 50, Stellation: 1, Epoch: tc.epoch, StepDelay: tc.delay}
		assert.Equal(t, tc.want, c.Estimate(), "epoch=%d delay=%v", tc.epoch, tc.delay)
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Size: 0, Stellation: 1, Epoch: 3},
		{Size: -5, Stellation: 1, Epoch: 3},
		{Size: 50, Stellation: 1, Epoch: 0},
		{Size: 50, Stellation: 2.5, Epoch: 3},
		{Size: 50, Stellation: 1, Epoch: 7},
		{Size: 50, Stellation: 1, Epoch: 3, StepDelay: 250},
		{Size: 50, Stellation: 1.25, Epoch: 3},
		{Size: 50.5, Stellation: 1, Epoch: 3},
		{Size: 50, Stellation: 1, Epoch: 3, StepDelay: 25},
	}
	for _, c := range bad {
		err := c.Validate()
		require.Error(t, err, c.String())
		assert.True(t, errors.Is(err, ErrInvalidConfig), c.String())
	}
}

func TestWithSnapsAndRejects(t *testing.T) {
	c := DefaultConfig()

	next, err := c.With(FieldStellation, 1.1000000000000001)
	require.NoError(t, err)
	assert.Equal(t, 1.1, next.Stellation)

	next, err = c.With(FieldStepDelay, 60)
	require.NoError(t, err)
	assert.Equal(t, 50.0, next.StepDelay)

	next, err = c.With(FieldEpoch, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, next.Epoch)
	assert.Equal(t, 3, c.Epoch, "With must not mutate the receiver")

	_, err = c.With(FieldSize, 5)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = c.With(Field("colour"), 1)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGateBusyWindow(t *testing.T) {
	store := NewStore(Config{Size: 50, Stellation: 1, Epoch: 4, StepDelay: 50})
	start := time.Unix(5000, 0)
	tracker := &fakeTracker{started: start, estimate: store.Config().Estimate()}

	var notices []string
	gate := NewGate(store, tracker, core.NotifierFunc(func(msg string) { notices = append(notices, msg) }))
	gate.TakePending()

	err := gate.Request(start, FieldSize, 60)
	require.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 50.0, store.Config().Size, "rejected change must not reach the store")
	assert.False(t, gate.Pending())
	assert.Equal(t, []string{BusyNotice}, notices)

	err = gate.Request(start.Add(4049*time.Millisecond), FieldSize, 60)
	require.ErrorIs(t, err, ErrBusy)

	err = gate.Request(start.Add(4050*time.Millisecond), FieldSize, 60)
	require.NoError(t, err)
	assert.Equal(t, 60.0, store.Config().Size)
	assert.True(t, gate.Pending())
	assert.Len(t, notices, 2)
}

func TestGateInvalidBeforeBusy(t *testing.T) {
	store := NewStore(DefaultConfig())
	start := time.Unix(5000, 0)
	gate := NewGate(store, &fakeTracker{started: start, estimate: time.Hour}, nil)

	err := gate.Request(start, FieldEpoch, 9)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.NotErrorIs(t, err, ErrBusy)
}

func TestGateOpenBeforeFirstStart(t *testing.T) {
	gate := NewGate(NewStore(DefaultConfig()), &fakeTracker{estimate: time.Hour}, nil)
	assert.True(t, gate.Pending(), "start-up raises the pending flag")
	assert.False(t, gate.Busy(time.Now()))
	assert.True(t, gate.TakePending())
	assert.False(t, gate.TakePending())
}

func TestResetIsIdempotent(t *testing.T) {
	store := NewStore(Config{Size: 80, Stellation: 0.3, Epoch: 2, StepDelay: 150})
	gate := NewGate(store, &fakeTracker{}, nil)

	require.NoError(t, gate.Reset(time.Now()))
	first := store.Config()
	require.NoError(t, gate.Reset(time.Now()))
	assert.Equal(t, first, store.Config())
	assert.Equal(t, ResetConfig(), first)
}

func TestResetRejectedWhileBusy(t *testing.T) {
	initial := Config{Size: 80, Stellation: 0.3, Epoch: 2, StepDelay: 150}
	store := NewStore(initial)
	now := time.Unix(10, 0)
	gate := NewGate(store, &fakeTracker{started: now, estimate: time.Second}, nil)

	assert.ErrorIs(t, gate.Reset(now), ErrBusy)
	assert.Equal(t, initial, store.Config())
}

func TestRegenerateRaisesPending(t *testing.T) {
	store := NewStore(DefaultConfig())
	gate := NewGate(store, &fakeTracker{}, nil)
	gate.TakePending()

	require.NoError(t, gate.Regenerate(time.Now()))
	assert.True(t, gate.Pending())
	assert.Equal(t, DefaultConfig(), store.Config())
}

func TestParsePreset(t *testing.T) {
	c, err := Parse([]byte("size: 70\nepoch: 2\n"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Config{Size: 70, Stellation: 1, Epoch: 2, StepDelay: 0}, c)

	_, err = Parse([]byte("size: 70\nwobble: 1\n"), DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]byte("epoch: 12\n"), DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	off := []string{
		"epoch: 2.7\n",
		"step_delay: 25\n",
		"stellation: 0.137\n",
		"size: 42.5\n",
	}
	for _, in := range off {
		c, err := Parse([]byte(in), DefaultConfig())
		assert.ErrorIs(t, err, ErrInvalidConfig, in)
		assert.Equal(t, DefaultConfig(), c, in)
	}

	c, err = Parse([]byte("epoch: 4.0\nstellation: 1.3\nstep_delay: 150\n"), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, Config{Size: 50, Stellation: 1.3, Epoch: 4, StepDelay: 150}, c)

	c, err = Parse(nil, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stellation: 0.5\nstep_delay: 100\n"), 0o644))

	c, err := LoadFile(path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.Stellation)
	assert.Equal(t, 100.0, c.StepDelay)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultConfig())
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(DefaultConfig(), map[string]string{"size": "60", "epoch": "4", "step_delay": "50"})
	require.NoError(t, err)
	assert.Equal(t, Config{Size: 60, Stellation: 1, Epoch: 4, StepDelay: 50}, c)

	_, err = FromMap(DefaultConfig(), map[string]string{"depth": "4"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = FromMap(DefaultConfig(), map[string]string{"epoch": "10"})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	off := []map[string]string{
		{"epoch": "2.7"},
		{"step_delay": "7"},
		{"stellation": "1.23"},
		{"step_delay": "7", "stellation": "1.23"},
	}
	for _, kv := range off {
		c, err := FromMap(DefaultConfig(), kv)
		assert.ErrorIs(t, err, ErrInvalidConfig, "%v", kv)
		assert.Equal(t, DefaultConfig(), c, "%v", kv)
	}

	c, err = FromMap(DefaultConfig(), map[string]string{"stellation": "0.7", "epoch": "6"})
	require.NoError(t, err)
	assert.Equal(t, 0.7, c.Stellation)
	assert.Equal(t, 6, c.Epoch)

	c, err = FromMap(DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}
