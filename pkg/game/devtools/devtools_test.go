package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"reynard/pkg/engine/logger"
	"reynard/pkg/engine/world"
	"reynard/pkg/game/config"
	"reynard/pkg/game/grid"
	"reynard/pkg/game/level"
	"reynard/pkg/game/state"
)

func init() {
	logger.Silence()
}

func devGame(t *testing.T) *state.Game {
	t.Helper()
	tune := config.Default()
	f := DevLevel(tune.Room.Width, tune.Room.Height)
	lvl, err := level.Build(f, grid.DefaultOptions(tune.Room.Width, tune.Room.Height, tune.Physics.Scale), nil, nil)
	if err != nil {
		t.Fatalf("build dev level: %v", err)
	}
	return state.NewGame(lvl, tune)
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestDevLevel_CoversEveryRoomType(t *testing.T) {
	f := DevLevel(320, 224)
	used := map[string]bool{}
	for _, row := range f.Grid {
		for _, id := range row {
			used[id] = true
		}
	}
	for id := range f.RoomTypes {
		if !used[id] {
			t.Errorf("room type %q not placed", id)
		}
	}

	g := devGame(t)
	if got := g.Grid.Outstanding(); got != 2 {
		t.Errorf("Outstanding() = %d, want 2", got)
	}
	if len(g.Enemies) != 1 {
		t.Errorf("enemies = %d, want 1", len(g.Enemies))
	}
}

func TestWriteMap(t *testing.T) {
	g := devGame(t)

	var buf bytes.Buffer
	WriteMap(&buf, g, false)
	want := []string{".^vCE", "@C..e"}
	got := lines(buf.String())
	if len(got) != len(want) {
		t.Fatalf("map has %d rows, want %d:\n%s", len(got), len(want), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}

	g.Grid.SetRoomFog(world.C(2, 0), true)
	buf.Reset()
	WriteMap(&buf, g, true)
	if got := lines(buf.String())[1]; got != "@C#.e" {
		t.Errorf("fogged row = %q, want %q", got, "@C#.e")
	}
	buf.Reset()
	WriteMap(&buf, g, false)
	if got := lines(buf.String())[1]; got != "@C..e" {
		t.Errorf("full row = %q, want %q", got, "@C..e")
	}
}

func TestWriteDump_Sections(t *testing.T) {
	g := devGame(t)

	var buf bytes.Buffer
	if err := WriteDump(&buf, g); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}
	out := buf.String()
	for _, s := range []string{
		"--- Metadata ---",
		"--- Legend (cell symbols) ---",
		"--- Map (fog applied) ---",
		"--- Map (full layout) ---",
		"--- Rooms ---",
		"--- Regions ---",
		"--- Actors ---",
		"checkpoints_outstanding: 2",
		"checkpoint: 1 col: 1 row: 0 cleared: false",
		"checkpoint: 2 col: 3 row: 1 cleared: false",
		"enemy: 0",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("dump missing %q", s)
		}
	}

	if err := WriteDump(&buf, nil); err != ErrNoGrid {
		t.Errorf("WriteDump(nil) = %v, want ErrNoGrid", err)
	}
}

func TestDumpMapToFile(t *testing.T) {
	t.Chdir(t.TempDir())
	g := devGame(t)

	path, err := DumpMapToFile(g)
	if err != nil {
		t.Fatalf("DumpMapToFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.Contains(string(data), "name: "+DevLevelName) {
		t.Errorf("dump does not name the level")
	}
}

func TestScreenshotHTML(t *testing.T) {
	g := devGame(t)
	g.AddMessage("<hello>")

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, g); err != nil {
		t.Fatalf("WriteScreenshotHTML: %v", err)
	}
	out := buf.String()
	for _, s := range []string{
		`<table class="map">`,
		`<td class="reynard">@</td>`,
		`<td class="enemy">e</td>`,
		`<td class="exit-locked">E</td>`,
		"&lt;hello&gt;",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("screenshot missing %q", s)
		}
	}

	t.Chdir(t.TempDir())
	name, err := SaveScreenshotHTML(g)
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	if _, err := os.Stat(name); err != nil {
		t.Errorf("screenshot file: %v", err)
	}
}

func TestPrintMap_PlainWhenNotATerminal(t *testing.T) {
	g := devGame(t)

	var buf bytes.Buffer
	if err := PrintMap(&buf, g); err != nil {
		t.Fatalf("PrintMap: %v", err)
	}
	got := lines(buf.String())
	if got[0] != ".^vCE" || got[1] != "@C..e" {
		t.Errorf("map rows = %q", got[:2])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes written to a non-terminal")
	}
	if len(got) != 4 {
		t.Errorf("got %d lines, want map, legend and status", len(got))
	}
}
