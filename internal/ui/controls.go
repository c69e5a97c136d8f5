package ui

import (
	"image"
	"math"
	"strconv"

	"stellate/internal/core"
)

// Panel is the minimum a HUD needs to show: a name and a parameter snapshot.
// Controls, setters and reset are picked up when the panel implements the
// matching core interfaces.
type Panel interface {
	Name() string
	Parameters() core.ParameterSnapshot
}

// row is one adjustable field with its -/+ buttons.
type row struct {
	ctrl  core.ParameterControl
	value float64
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// nudge returns the value one step away in direction dir, clamped to the
// control's range. ok is false when the value cannot move.
func (r *row) nudge(dir int) (next float64, ok bool) {
	if !r.known || dir == 0 {
		return 0, false
	}
	step := r.ctrl.Step
	if step <= 0 {
		step = 1
	}
	next = r.value + float64(dir)*step
	if r.ctrl.HasMin {
		next = math.Max(next, r.ctrl.Min)
	}
	if r.ctrl.HasMax {
		next = math.Min(next, r.ctrl.Max)
	}
	return next, math.Abs(next-r.value) > 1e-9
}

func (r *row) text() string {
	switch {
	case !r.known:
		return "--"
	case r.ctrl.Type == core.ParamTypeFloat:
		return strconv.FormatFloat(r.value, 'f', 1, 64)
	}
	return strconv.Itoa(int(math.Round(r.value)))
}

// controlSet is the clickable part of the HUD. It holds no ebiten state.
type controlSet struct {
	rows     []row
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter
	resetter core.ParameterResetter
	reset    image.Rectangle
}

func newControlSet(source Panel, width int) *controlSet {
	c := &controlSet{}
	if provider, ok := source.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			c.rows = append(c.rows, row{ctrl: ctrl})
		}
	}
	c.ints, _ = source.(core.IntParameterSetter)
	c.floats, _ = source.(core.FloatParameterSetter)
	c.resetter, _ = source.(core.ParameterResetter)
	c.layout(width)
	return c
}

// layout stacks the rows under the title with their buttons flush right and
// puts the reset button on the line after the last row.
func (c *controlSet) layout(width int) {
	for i := range c.rows {
		top := controlsTop + i*lineHeight
		y := top + (lineHeight-buttonSize)/2
		right := width - panelPadding
		c.rows[i].top = top
		c.rows[i].plus = image.Rect(right-buttonSize, y, right, y+buttonSize)
		c.rows[i].minus = c.rows[i].plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
	if c.resetter != nil {
		y := controlsTop + len(c.rows)*lineHeight + (lineHeight-buttonSize)/2
		c.reset = image.Rect(panelPadding, y, width-panelPadding, y+buttonSize)
	}
}

// refresh pulls committed values from the snapshot, discarding any value a
// rejected click left behind.
func (c *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range c.rows {
		r := &c.rows[i]
		p, ok := snapshot.Lookup(r.ctrl.Key)
		if !ok {
			r.known = false
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		r.value, r.known = v, err == nil
	}
}

// click handles a press at panel coordinates (x, y). It reports whether a
// button was hit.
func (c *controlSet) click(x, y int) bool {
	pt := image.Pt(x, y)
	if c.resetter != nil && pt.In(c.reset) {
		c.resetter.ResetParameters()
		return true
	}
	for i := range c.rows {
		switch {
		case pt.In(c.rows[i].minus):
			c.adjust(&c.rows[i], -1)
			return true
		case pt.In(c.rows[i].plus):
			c.adjust(&c.rows[i], 1)
			return true
		}
	}
	return false
}

func (c *controlSet) adjust(r *row, dir int) {
	next, ok := r.nudge(dir)
	if !ok {
		return
	}
	accepted := false
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		if c.ints != nil {
			accepted = c.ints.SetIntParameter(r.ctrl.Key, int(math.Round(next)))
		}
	case core.ParamTypeFloat:
		if c.floats != nil {
			accepted = c.floats.SetFloatParameter(r.ctrl.Key, next)
		}
	}
	if accepted {
		r.value = next
	}
}

// enabled reports whether the button in direction dir would do anything.
func (c *controlSet) enabled(r *row, dir int) bool {
	if _, ok := r.nudge(dir); !ok {
		return false
	}
	if r.ctrl.Type == core.ParamTypeFloat {
		return c.floats != nil
	}
	return c.ints != nil
}

const (
	panelPadding    = 12
	lineHeight      = 36
	buttonSize      = 24
	buttonGap       = 6
	headerBaseline  = 18
	labelBaseline   = 24
	progressSpacing = 18
	controlsTop     = panelPadding + headerBaseline + 14
)
