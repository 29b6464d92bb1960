package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"reynard/pkg/game/campaign"
	"reynard/pkg/game/state"
)

// drawIcon draws a single glyph centred on (cx, cy) with the mono font.
func (v *Viewer) drawIcon(screen *ebiten.Image, icon string, cx, cy float32, clr color.Color) {
	w, h := text.Measure(icon, v.iconFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx)-w/2, float64(cy)-h/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, icon, v.iconFace, op)
}

// drawColoredText draws UI text with its top-left corner at (x, y).
func (v *Viewer) drawColoredText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, v.uiFace, op)
}

// getTextWidth returns the width of a string in pixels at UI font size
func (v *Viewer) getTextWidth(str string) float64 {
	w, _ := text.Measure(str, v.uiFace, 0)
	return w
}

// drawHUD shows the level, the checkpoints left and the death count in the
// top-left corner.
func (v *Viewer) drawHUD(screen *ebiten.Image, g *state.Game) {
	title := g.Name
	if g.Level > 0 {
		title = gotext.Get("HUD_LEVEL", g.Level, campaign.ThemeName(campaign.ThemeFor(g.Level)))
	}
	lines := []string{
		title,
		gotext.Get("HUD_CHECKPOINTS", g.Grid.Outstanding()),
		gotext.Get("HUD_DEATHS", g.Deaths),
		fmt.Sprintf("%.1fs", g.Elapsed),
	}
	if g.Env.ZoomedOut() {
		lines = append(lines, gotext.Get("HUD_ZOOMED_OUT"))
	}

	width := 0.0
	for _, l := range lines {
		width = max(width, v.getTextWidth(l))
	}
	vector.DrawFilledRect(screen, hudPadding/2, hudPadding/2,
		float32(width)+hudPadding, float32(len(lines)*lineHeight)+hudPadding, colorPanelBackground, false)
	for i, l := range lines {
		clr := colorSubtle
		if i == 0 {
			clr = colorText
		}
		v.drawColoredText(screen, l, hudPadding, hudPadding+i*lineHeight, clr)
	}
}

// drawMessages shows the message log at the bottom of the screen, newest
// last.
func (v *Viewer) drawMessages(screen *ebiten.Image, g *state.Game) {
	if len(g.Messages) == 0 {
		return
	}
	height := len(g.Messages)*lineHeight + hudPadding
	top := v.screenHeight - height - hudPadding/2
	vector.DrawFilledRect(screen, 0, float32(top), float32(v.screenWidth), float32(height+hudPadding/2), colorPanelBackground, false)
	for i, msg := range g.Messages {
		v.drawColoredText(screen, msg, hudPadding, top+hudPadding/2+i*lineHeight, colorText)
	}
}
