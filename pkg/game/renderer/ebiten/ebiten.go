// Package ebiten provides the Ebiten-based 2D graphical viewer for Reynard.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"reynard/pkg/engine/logger"
	"reynard/pkg/game/gameplay"
	"reynard/pkg/game/renderer"
	"reynard/pkg/game/state"
)

// Viewer runs a game inside an Ebiten window. Ebiten calls Update at a fixed
// tick rate, which is also the simulation step.
type Viewer struct {
	game *state.Game

	windowWidth  int
	windowHeight int
	screenWidth  int
	screenHeight int
	zoom         float64
	tps          int

	uiFace   *text.GoTextFace
	iconFace *text.GoTextFace

	windowOpenedLogged bool
	log                *logrus.Entry
}

// New creates a viewer for g.
func New(g *state.Game) (*Viewer, error) {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load ui font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load icon font: %w", err)
	}
	v := &Viewer{
		game:         g,
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		zoom:         1,
		tps:          ebiten.DefaultTPS,
		uiFace:       &text.GoTextFace{Source: sans, Size: uiFontSize},
		iconFace:     &text.GoTextFace{Source: mono, Size: iconFontSize},
		log:          logger.For("viewer"),
	}
	cfg := g.Tuning.Viewer
	if cfg.Width > 0 && cfg.Height > 0 {
		v.windowWidth, v.windowHeight = cfg.Width, cfg.Height
	}
	if cfg.Zoom > 0 {
		v.zoom = cfg.Zoom
	}
	if cfg.TPS > 0 {
		v.tps = cfg.TPS
	}
	v.screenWidth, v.screenHeight = v.windowWidth, v.windowHeight
	return v, nil
}

// Run opens the window and blocks until the player quits or closes it.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.windowWidth, v.windowHeight)
	ebiten.SetWindowTitle("Reynard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(v.tps)

	err := ebiten.RunGame(v)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (v *Viewer) Update() error {
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		v.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("window opened")
	}

	// the camera first, so pointer positions resolve against what is drawn
	v.updateCamera()

	dt := 1.0 / float64(ebiten.TPS())
	if gameplay.Step(v.game, dt, v.readFrame()) {
		return ebiten.Termination
	}
	return nil
}

// Layout uses the window size as the logical screen size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.screenWidth, v.screenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// updateCamera points the grid node at Reynard, or fits the whole grid on
// screen while zoomed out.
func (v *Viewer) updateCamera() {
	g := v.game
	opts := g.Grid.Options()
	gridW := float64(g.Grid.Width()) * opts.RoomWidth
	gridH := float64(g.Grid.Height()) * opts.RoomHeight
	sw, sh := float64(v.screenWidth), float64(v.screenHeight)

	if g.Env.ZoomedOut() {
		node, _ := renderer.Fit(sw, sh, gridW, gridH, renderer.DefaultMargin)
		g.Grid.SetNode(node)
		return
	}
	p := g.Character().Position()
	g.Grid.SetNode(renderer.Follow(sw, sh, gridW, gridH, p.X*opts.PhysicsScale, p.Y*opts.PhysicsScale, v.zoom))
}
