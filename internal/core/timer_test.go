package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPacerSpacing(t *testing.T) {
	base := time.Unix(1000, 0)
	p := NewPacer(50 * time.Millisecond)

	assert.True(t, p.Ready(base), "fresh pacer must be ready")
	p.Arm(base)
	assert.False(t, p.Ready(base))
	assert.False(t, p.Ready(base.Add(49*time.Millisecond)))
	assert.True(t, p.Ready(base.Add(50*time.Millisecond)))

	p.Clear()
	assert.True(t, p.Ready(base))
}

func TestPacerZeroAndNegativeDelay(t *testing.T) {
	base := time.Unix(1000, 0)
	p := NewPacer(-time.Second)
	assert.Equal(t, time.Duration(0), p.Delay())

	p.Arm(base)
	assert.True(t, p.Ready(base), "zero delay is ready on the same instant")
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := snap.Lookup("y")
	assert.True(t, ok)
	assert.Equal(t, "2", p.Value)

	_, ok = snap.Lookup("z")
	assert.False(t, ok)
}
