package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"reynard/pkg/engine/world"
	"reynard/pkg/game/campaign"
	"reynard/pkg/game/state"
)

// SaveScreenshotHTML saves the current map view as an HTML file
func SaveScreenshotHTML(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, g); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteScreenshotHTML writes the fog-aware map of g as an HTML page.
func WriteScreenshotHTML(w io.Writer, g *state.Game) error {
	if g == nil || g.Grid == nil {
		return ErrNoGrid
	}
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Reynard - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status { color: #888; margin-bottom: 20px; }
        table.map {
            background-color: #0f0f1a;
            border-collapse: collapse;
            margin: 20px 0;
        }
        table.map td {
            width: 32px;
            height: 24px;
            text-align: center;
            border: 1px solid #333;
        }
        .reynard { color: #00ff00; font-weight: bold; }
        .enemy { color: #ff4444; font-weight: bold; }
        .fog { background-color: #222; color: #444; }
        .room { color: #888; }
        .locked { color: #ffff00; font-weight: bold; }
        .spikes { color: #ff4444; }
        .checkpoint { color: #00ffff; font-weight: bold; }
        .falling { color: #ff66ff; }
        .exit-locked { color: #ff4444; font-weight: bold; }
        .exit-open { color: #00aa00; font-weight: bold; }
        .selected { outline: 2px solid #bb86fc; }
        .void { background-color: #1a1a2e; border: none; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	header := g.Name
	if g.Level > 0 {
		header = fmt.Sprintf("Level %d: %s", g.Level, campaign.ThemeName(campaign.ThemeFor(g.Level)))
	}
	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(header))
	fmt.Fprintf(&b, `    <div class="status">Checkpoints left: %d &middot; Deaths: %d &middot; Time: %.1fs</div>`+"\n",
		g.Grid.Outstanding(), g.Deaths, g.Elapsed)

	exitOpen := g.Grid.Outstanding() == 0
	sel := g.Env.Selection()
	b.WriteString(`    <table class="map">` + "\n")
	for row := g.Grid.Height() - 1; row >= 0; row-- {
		b.WriteString("        <tr>")
		for col := 0; col < g.Grid.Width(); col++ {
			c := world.C(col, row)
			sym := cellSymbol(g, c, true)
			class := cellClass(sym, exitOpen)
			if c == sel {
				class += " selected"
			}
			fmt.Fprintf(&b, `<td class="%s">%s</td>`, class, html.EscapeString(string(sym)))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("    </table>\n")

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// cellClass returns the CSS class for a map symbol.
func cellClass(sym rune, exitOpen bool) string {
	switch sym {
	case '@':
		return "reynard"
	case 'e':
		return "enemy"
	case '#':
		return "fog"
	case 'L':
		return "locked"
	case '^':
		return "spikes"
	case 'C':
		return "checkpoint"
	case 'v':
		return "falling"
	case 'E':
		if exitOpen {
			return "exit-open"
		}
		return "exit-locked"
	case ' ':
		return "void"
	default:
		return "room"
	}
}
