package ui

import (
	"testing"

	"stellate/internal/core"

	"github.com/stretchr/testify/assert"
)

var _ core.Notifier = (*Notices)(nil)

func TestNoticeLifetime(t *testing.T) {
	n := NewNotices(8)
	_, _, ok := n.Current()
	assert.False(t, ok)

	n.Notify("wait")
	msg, alpha, ok := n.Current()
	assert.True(t, ok)
	assert.Equal(t, "wait", msg)
	assert.Equal(t, 1.0, alpha)

	for i := 0; i < 7; i++ {
		n.Advance()
	}
	_, alpha, ok = n.Current()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, alpha, 1e-9, "last quarter fades")

	n.Advance()
	_, _, ok = n.Current()
	assert.False(t, ok)
}

func TestNoticeReplaces(t *testing.T) {
	n := NewNotices(0)
	n.Notify("first")
	for i := 0; i < DefaultNoticeFrames-1; i++ {
		n.Advance()
	}
	n.Notify("second")
	msg, alpha, ok := n.Current()
	assert.True(t, ok)
	assert.Equal(t, "second", msg)
	assert.Equal(t, 1.0, alpha, "a new notice restarts the countdown")
}
