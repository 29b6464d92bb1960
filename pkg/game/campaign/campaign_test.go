package campaign

import "testing"

func TestThemeForCycles(t *testing.T) {
	if ThemeFor(0) != Burrow || ThemeFor(1) != Burrow {
		t.Errorf("first level should be Burrow")
	}
	if got := ThemeFor(1 + themeCount); got != Burrow {
		t.Errorf("ThemeFor(%d) = %v, want Burrow", 1+themeCount, got)
	}
	if got := ThemeFor(3); got != Ruins {
		t.Errorf("ThemeFor(3) = %v, want Ruins", got)
	}
}

func TestNext(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {1, 2}, {TotalLevels - 1, TotalLevels}, {TotalLevels, 0},
	}
	for _, tt := range tests {
		if got := Next(tt.in); got != tt.want {
			t.Errorf("Next(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if !IsFinal(TotalLevels) || IsFinal(TotalLevels-1) {
		t.Errorf("IsFinal boundary wrong")
	}
}

func TestDifficultyGrows(t *testing.T) {
	prev := DifficultyFor(1)
	for level := 2; level < TotalLevels; level++ {
		d := DifficultyFor(level)
		if d.Cols < prev.Cols || d.Enemies < prev.Enemies || d.SpikeChance < prev.SpikeChance {
			t.Errorf("level %d easier than level %d: %+v vs %+v", level, level-1, d, prev)
		}
		prev = d
	}
	final := DifficultyFor(TotalLevels)
	if final.Cols > DifficultyFor(TotalLevels-1).Cols {
		t.Errorf("final level should not be wider than the one before it")
	}
}

func TestPaletteNonEmpty(t *testing.T) {
	for th := Theme(0); th < themeCount; th++ {
		p := Palette(th)
		if len(p) == 0 {
			t.Errorf("Palette(%v) empty", th)
		}
		for id, w := range p {
			if w <= 0 {
				t.Errorf("Palette(%v)[%q] weight %d", th, id, w)
			}
		}
	}
}
