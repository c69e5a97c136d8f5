//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"stellate/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonOn        = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff       = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the mesh view.
type HUD struct {
	source   Panel
	controls *controlSet
	snapshot core.ParameterSnapshot
	title    string
	width    int
	offsetX  int

	canvas *ebiten.Image
	pixel  *ebiten.Image
}

// NewHUD constructs a HUD for the provided panel and width.
func NewHUD(source Panel, width int) *HUD {
	h := &HUD{
		source:   source,
		controls: newControlSet(source, width),
		title:    titleFor(source),
		width:    max(width, 0),
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the snapshot and handles clicks. A rejected adjustment
// falls back to the committed value on the next refresh.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.snapshot = h.source.Parameters()
	h.controls.refresh(h.snapshot)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= offsetX {
			h.controls.click(mx-offsetX, my)
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.canvas == nil || h.canvas.Bounds().Dy() != height {
		h.canvas = ebiten.NewImage(h.width, height)
	}
	h.canvas.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.canvas, h.title, face, panelPadding, panelPadding+headerBaseline, textBright)
	for i := range h.controls.rows {
		r := &h.controls.rows[i]
		y := r.top + labelBaseline
		text.Draw(h.canvas, r.ctrl.Label, face, panelPadding, y, textBright)
		value := r.text()
		w := text.BoundString(face, value).Dx()
		fg := textBright
		if !r.known {
			fg = textDim
		}
		text.Draw(h.canvas, value, face, r.minus.Min.X-buttonGap-w, y, fg)
		h.button(r.minus, "-", h.controls.enabled(r, -1))
		h.button(r.plus, "+", h.controls.enabled(r, 1))
	}
	if h.controls.resetter != nil {
		h.button(h.controls.reset, "Reset", true)
	}

	// Read-only values go under the buttons.
	y := controlsTop + (len(h.controls.rows)+2)*lineHeight
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if p.Type != core.ParamTypeText && h.controlled(p.Key) {
				continue
			}
			text.Draw(h.canvas, p.Label+": "+p.Value, face, panelPadding, y, textDim)
			y += progressSpacing
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) controlled(key string) bool {
	for _, r := range h.controls.rows {
		if r.ctrl.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) button(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonOn, color.Color(color.RGBA{R: 230, G: 230, B: 240, A: 255})
	if !enabled {
		bg, fg = buttonOff, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.canvas.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.canvas, label, face, x, y, fg)
}

func titleFor(p Panel) string {
	if p == nil || p.Name() == "" {
		return "Controls"
	}
	name := p.Name()
	return fmt.Sprintf("%s Controls", strings.ToUpper(name[:1])+name[1:])
}
