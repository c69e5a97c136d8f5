//go:build ebiten

package render

import (
	"image"
	"image/color"

	"stellate/internal/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxFacesPerBatch keeps vertex indices within uint16.
const maxFacesPerBatch = 21845

// MeshPainter draws the visible mesh as flat, translucent, double-sided
// triangles.
type MeshPainter struct {
	src      *ebiten.Image
	faces    []Face
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewMeshPainter allocates the painter's source texture.
func NewMeshPainter() *MeshPainter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &MeshPainter{src: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw fills dst with the background and paints entries through cam.
func (p *MeshPainter) Draw(dst *ebiten.Image, cam Camera, entries []mesh.Entry) {
	dst.Fill(Background)
	p.faces = cam.ProjectEntries(entries, p.faces)
	for start := 0; start < len(p.faces); start += maxFacesPerBatch {
		end := min(start+maxFacesPerBatch, len(p.faces))
		p.drawBatch(dst, p.faces[start:end])
	}
}

func (p *MeshPainter) drawBatch(dst *ebiten.Image, faces []Face) {
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
	for _, f := range faces {
		r, g, b, a := vertexColor(f.Entry.Color)
		base := uint16(len(p.vertices))
		for i := 0; i < 3; i++ {
			p.vertices = append(p.vertices, ebiten.Vertex{
				DstX:   f.X[i],
				DstY:   f.Y[i],
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		p.indices = append(p.indices, base, base+1, base+2)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(p.vertices, p.indices, p.src, op)
}
