//go:build !ebiten

package ui

// Overlay keeps notices in headless builds without drawing them.
type Overlay struct {
	*Notices
}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{Notices: NewNotices(DefaultNoticeFrames)} }

// Update counts the current notice down by one frame.
func (o *Overlay) Update() { o.Advance() }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int) {}
