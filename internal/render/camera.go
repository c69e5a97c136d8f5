package render

import (
	"math"
	"sort"

	"stellate/internal/mesh"

	"gonum.org/v1/gonum/spatial/r3"
)

// Orbit limits for the camera controls.
const (
	MinPolar    = math.Pi / 3.5
	MaxPolar    = math.Pi - math.Pi/3
	MinDistance = 200.0
	MaxDistance = 500.0

	defaultDistance = 400.0
	defaultFOV      = 50 * math.Pi / 180
	nearPlane       = 0.1
)

var worldUp = r3.Vec{Y: 1}

// Camera orbits the origin. Polar is measured from +Y, Azimuth around +Y
// starting at +Z.
type Camera struct {
	Azimuth  float64
	Polar    float64
	Distance float64
	FOV      float64

	Width  int
	Height int
}

// NewCamera returns a camera on the +Z axis looking at the origin.
func NewCamera(width, height int) Camera {
	return Camera{
		Polar:    math.Pi / 2,
		Distance: defaultDistance,
		FOV:      defaultFOV,
		Width:    width,
		Height:   height,
	}
}

// Orbit rotates the camera, clamping the polar angle.
func (c *Camera) Orbit(dAzimuth, dPolar float64) {
	c.Azimuth = math.Mod(c.Azimuth+dAzimuth, 2*math.Pi)
	c.Polar = clamp(c.Polar+dPolar, MinPolar, MaxPolar)
}

// Zoom moves the camera along its view direction, clamping the distance.
func (c *Camera) Zoom(delta float64) {
	c.Distance = clamp(c.Distance+delta, MinDistance, MaxDistance)
}

// Eye returns the camera position.
func (c Camera) Eye() r3.Vec {
	sp := math.Sin(c.Polar)
	return r3.Vec{
		X: c.Distance * sp * math.Sin(c.Azimuth),
		Y: c.Distance * math.Cos(c.Polar),
		Z: c.Distance * sp * math.Cos(c.Azimuth),
	}
}

// Project maps p to screen coordinates. ok is false for points behind the
// near plane.
func (c Camera) Project(p r3.Vec) (x, y, depth float64, ok bool) {
	eye := c.Eye()
	forward := r3.Unit(r3.Scale(-1, eye))
	right := r3.Cross(forward, worldUp)
	if r3.Norm(right) == 0 {
		right = r3.Vec{X: 1}
	}
	right = r3.Unit(right)
	up := r3.Cross(right, forward)

	v := r3.Sub(p, eye)
	depth = r3.Dot(v, forward)
	if depth <= nearPlane {
		return 0, 0, depth, false
	}
	fov := c.FOV
	if fov <= 0 {
		fov = defaultFOV
	}
	focal := float64(c.Height) / 2 / math.Tan(fov/2)
	x = float64(c.Width)/2 + focal*r3.Dot(v, right)/depth
	y = float64(c.Height)/2 - focal*r3.Dot(v, up)/depth
	return x, y, depth, true
}

// Face is a projected triangle ready to draw.
type Face struct {
	X, Y  [3]float32
	Depth float64
	Entry mesh.Entry
}

// ProjectEntries projects every entry into dst and orders the result back to
// front. Faces with any vertex behind the camera are dropped.
func (c Camera) ProjectEntries(entries []mesh.Entry, dst []Face) []Face {
	dst = dst[:0]
	for _, e := range entries {
		var f Face
		visible := true
		for i, p := range e.Triangle.Vertices() {
			x, y, d, ok := c.Project(p)
			if !ok {
				visible = false
				break
			}
			f.X[i], f.Y[i] = float32(x), float32(y)
			f.Depth += d / 3
		}
		if !visible {
			continue
		}
		f.Entry = e
		dst = append(dst, f)
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].Depth > dst[j].Depth })
	return dst
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
