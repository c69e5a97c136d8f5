// Package mesh owns the set of triangles currently on display.
package mesh

import (
	"image/color"

	"stellate/internal/core"
)

// Entry is one displayable face.
type Entry struct {
	Triangle core.Triangle
	Color    color.RGBA
}

// Registry holds the visible mesh. Entries are only ever removed all at once,
// when a regeneration begins.
type Registry struct {
	entries   []Entry
	colors    *ColorCycler
	listeners []core.MeshListener
}

// NewRegistry constructs an empty registry coloring new faces from colors.
// A nil cycler gets a fresh one.
func NewRegistry(colors *ColorCycler, listeners ...core.MeshListener) *Registry {
	if colors == nil {
		colors = NewColorCycler()
	}
	r := &Registry{colors: colors}
	for _, l := range listeners {
		r.Subscribe(l)
	}
	return r
}

// Subscribe adds a listener for subsequent mesh events.
func (r *Registry) Subscribe(l core.MeshListener) {
	if l == nil {
		return
	}
	r.listeners = append(r.listeners, l)
}

// BeginRegeneration drops every entry in one batch and then signals listeners.
func (r *Registry) BeginRegeneration() {
	clear(r.entries)
	r.entries = r.entries[:0]
	for _, l := range r.listeners {
		l.OnRegenerationBegin()
	}
}

// AddTriangle appends one entry and forwards it to listeners immediately.
func (r *Registry) AddTriangle(t core.Triangle, c color.RGBA) {
	r.entries = append(r.entries, Entry{Triangle: t, Color: c})
	for _, l := range r.listeners {
		l.OnTriangleAdded(t, c)
	}
}

// Add appends t using the next color from the cycler.
func (r *Registry) Add(t core.Triangle) {
	r.AddTriangle(t, r.colors.Next())
}

// Len reports the number of visible entries.
func (r *Registry) Len() int { return len(r.entries) }

// Entries exposes the visible set for reading. The slice is only valid until
// the next mutation and must not be modified.
func (r *Registry) Entries() []Entry { return r.entries }
