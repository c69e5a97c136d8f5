// Package fractal holds the geometry of the stellated tetrahedron: the seed
// solid and the rule that turns one face into three.
package fractal

import (
	"errors"
	"fmt"
	"math"

	"stellate/internal/core"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// SeedCount is the number of faces of the seed tetrahedron.
	SeedCount = 4
	// Branching is the number of children produced per subdivided face.
	Branching = 3
)

// ErrDegenerateTriangle is returned when a face has no usable normal.
var ErrDegenerateTriangle = errors.New("fractal: degenerate triangle")

// Subdivide splits t into three faces forming a pyramid raised over the
// triangle joining t's edge midpoints. The apex sits above that triangle's
// centroid along its unit normal, at a height proportional to stellation and
// to the root of the summed squared edge lengths of t.
func Subdivide(t core.Triangle, stellation float64) ([Branching]core.Triangle, error) {
	ab := midpoint(t.A, t.B)
	bc := midpoint(t.B, t.C)
	ca := midpoint(t.C, t.A)

	sumSq := r3.Norm2(r3.Sub(t.A, t.B)) + r3.Norm2(r3.Sub(t.B, t.C)) + r3.Norm2(r3.Sub(t.C, t.A))
	elevation := stellation * math.Sqrt(2*sumSq) / 6

	normal := r3.Cross(r3.Sub(ca, bc), r3.Sub(ab, bc))
	length := r3.Norm(normal)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return [Branching]core.Triangle{}, fmt.Errorf("%w: %v", ErrDegenerateTriangle, t)
	}

	centroid := r3.Scale(1.0/3, r3.Add(r3.Add(ab, bc), ca))
	spike := r3.Add(centroid, r3.Scale(elevation/length, normal))

	return [Branching]core.Triangle{
		{A: ab, B: bc, C: spike},
		{A: ab, B: spike, C: ca},
		{A: bc, B: ca, C: spike},
	}, nil
}

// Seed returns the faces of a regular tetrahedron with the given edge length.
// The base lies in the z=0 plane with its centroid on the origin and the apex
// sits on the z axis. Every face is wound so its normal points outward.
func Seed(size float64) [SeedCount]core.Triangle {
	h := size * math.Sqrt(6) / 3
	r := size * math.Sqrt(3) / 6

	left := r3.Vec{X: -size / 2, Y: -r}
	right := r3.Vec{X: size / 2, Y: -r}
	back := r3.Vec{Y: 2 * r}
	apex := r3.Vec{Z: h}

	return [SeedCount]core.Triangle{
		{A: left, B: back, C: right},
		{A: left, B: right, C: apex},
		{A: left, B: apex, C: back},
		{A: right, B: back, C: apex},
	}
}

// Normal returns the unit normal of t, or the zero vector for a degenerate
// face.
func Normal(t core.Triangle) r3.Vec {
	n := r3.Cross(r3.Sub(t.B, t.A), r3.Sub(t.C, t.A))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// LevelCount is the number of faces produced at level k, counting the seed as
// level 1.
func LevelCount(level int) int {
	if level < 1 {
		return 0
	}
	return SeedCount * pow3(level-1)
}

// TotalCount is the number of faces emitted by a full regeneration of the
// given depth, seed included.
func TotalCount(epoch int) int {
	total := 0
	for k := 1; k <= epoch; k++ {
		total += LevelCount(k)
	}
	return total
}

func midpoint(p, q r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(p, q))
}

func pow3(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= Branching
	}
	return v
}
