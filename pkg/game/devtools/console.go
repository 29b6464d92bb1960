package devtools

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"reynard/pkg/engine/terminal"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/state"
)

var (
	colorReynard  = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	colorEnemy    = color.Style{color.FgRed, color.OpBold}
	colorFog      = color.Style{color.FgGray}
	colorRoom     = color.Style{color.FgWhite}
	colorLocked   = color.Style{color.FgYellow, color.OpBold}
	colorHazard   = color.Style{color.FgRed}
	colorCheck    = color.Style{color.FgCyan, color.OpBold}
	colorExitOpen = color.Style{color.FgGreen}
	colorFalling  = color.Style{color.FgMagenta}
	colorSubtle   = color.Style{color.FgGray, color.OpBold}
)

// styleFor picks the colour of a map symbol.
func styleFor(sym rune, exitOpen bool) color.Style {
	switch sym {
	case '@':
		return colorReynard
	case 'e':
		return colorEnemy
	case '#':
		return colorFog
	case 'L':
		return colorLocked
	case '^':
		return colorHazard
	case 'C':
		return colorCheck
	case 'v':
		return colorFalling
	case 'E':
		if exitOpen {
			return colorExitOpen
		}
		return colorLocked
	default:
		return colorRoom
	}
}

// PrintMap prints the fog-aware map of g with a legend. Colour is only used
// when w is a terminal, and the legend is left out when it would not fit.
func PrintMap(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return ErrNoGrid
	}
	styled := terminal.IsTerminal(w)
	exitOpen := g.Grid.Outstanding() == 0

	for row := g.Grid.Height() - 1; row >= 0; row-- {
		for col := 0; col < g.Grid.Width(); col++ {
			sym := cellSymbol(g, world.C(col, row), true)
			if styled {
				fmt.Fprint(w, styleFor(sym, exitOpen).Sprint(string(sym)))
			} else {
				fmt.Fprint(w, string(sym))
			}
		}
		fmt.Fprintln(w)
	}

	legend := gotext.Get("DUMP_LEGEND")
	if !terminal.Fits(w, len(legend), g.Grid.Height()+2) && styled {
		return nil
	}
	if styled {
		legend = colorSubtle.Sprint(legend)
	}
	fmt.Fprintln(w, legend)
	fmt.Fprintln(w, gotext.Get("DUMP_STATUS", g.Level, g.Grid.Outstanding(), g.Deaths))
	return nil
}
