//go:build ebiten

package app

import (
	"time"

	"stellate/internal/render"
	"stellate/internal/scene"
	"stellate/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	orbitStep = 0.03
	zoomStep  = 12.0
)

// Game adapts a scene to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	painter *render.MeshPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	camera  render.Camera

	width    int
	height   int
	hudWidth int
}

// New constructs a Game for the provided scene. overlay should be the
// notifier the scene was built with so busy notices show up on screen.
func New(sc *scene.Scene, overlay *ui.Overlay, cfg *Config) *Game {
	if overlay == nil {
		overlay = ui.NewOverlay()
	}
	return &Game{
		scene:    sc,
		painter:  render.NewMeshPainter(),
		hud:      ui.NewHUD(sc, cfg.HUDWidth),
		overlay:  overlay,
		camera:   render.NewCamera(cfg.Width, cfg.Height),
		width:    cfg.Width,
		height:   cfg.Height,
		hudWidth: cfg.HUDWidth,
	}
}

// Update handles per-frame input and advances generation by one unit.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// Rejections are already reported through the overlay.
		_ = g.scene.Regenerate()
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camera.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camera.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.camera.Orbit(0, -orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.camera.Orbit(0, orbitStep)
	}
	if mx, _ := ebiten.CursorPosition(); mx < g.width {
		if _, wy := ebiten.Wheel(); wy != 0 {
			g.camera.Zoom(-wy * zoomStep)
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.width)
	}

	return g.scene.Tick(time.Now())
}

// Draw renders the mesh, the control panel and any notice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.camera, g.scene.Entries())
	if g.hud != nil {
		g.hud.Draw(screen, g.width, g.height)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen, g.width)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hudWidth, g.height
}
