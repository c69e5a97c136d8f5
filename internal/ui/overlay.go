//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws transient notices over the mesh view. It is the GUI's
// core.Notifier.
type Overlay struct {
	*Notices
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{Notices: NewNotices(DefaultNoticeFrames)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update counts the current notice down by one frame.
func (o *Overlay) Update() {
	o.Advance()
}

// Draw renders the current notice centred near the top of the view.
func (o *Overlay) Draw(screen *ebiten.Image, viewWidth int) {
	msg, alpha, ok := o.Current()
	if !ok {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	w := bounds.Dx() + 2*noticePadding
	h := bounds.Dy() + 2*noticePadding
	x := (viewWidth - w) / 2
	y := noticeTop

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.Scale(0.55*float32(alpha), 0.12*float32(alpha), 0.12*float32(alpha), 0.9*float32(alpha))
	screen.DrawImage(o.pixel, op)

	a := uint8(255 * alpha)
	text.Draw(screen, msg, face, x+noticePadding, y+noticePadding+bounds.Dy(), color.NRGBA{R: 255, G: 240, B: 240, A: a})
}

const (
	noticePadding = 10
	noticeTop     = 24
)
