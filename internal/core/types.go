package core

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Triangle is a single face of the fractal mesh. Vertex order decides the
// direction of the face normal.
type Triangle struct {
	A, B, C r3.Vec
}

// Vertices returns the three points in order.
func (t Triangle) Vertices() [3]r3.Vec { return [3]r3.Vec{t.A, t.B, t.C} }

// MeshListener receives visible-set changes as they happen. Listeners must not
// mutate the mesh they are observing.
type MeshListener interface {
	OnRegenerationBegin()
	OnTriangleAdded(t Triangle, c color.RGBA)
}

// Notifier surfaces a user-facing message synchronously.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(msg string)

// Notify calls f(msg).
func (f NotifierFunc) Notify(msg string) { f(msg) }
