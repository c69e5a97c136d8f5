package render

import "image/color"

// Material look shared by every face.
const (
	FaceOpacity = 0.75
)

// Background is the clear color behind the mesh.
var Background = color.RGBA{R: 0x04, G: 0x0d, B: 0x21, A: 0xff}

// vertexColor converts c into straight-alpha float components scaled by
// FaceOpacity.
func vertexColor(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff * FaceOpacity
}
