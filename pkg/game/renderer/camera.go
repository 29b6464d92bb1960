// Package renderer holds the backend-independent parts of drawing a level:
// where the camera looks and how big the grid appears.
package renderer

import "reynard/pkg/engine/world"

// DefaultMargin is the gap left around the grid when it is zoomed out.
const DefaultMargin = 24.0

// Follow returns the node transform that keeps the point (px, py), in
// grid-local pixels, in the middle of the screen at the given zoom. The
// camera stops at the grid edges; a grid smaller than the screen is centred.
func Follow(screenW, screenH, gridW, gridH, px, py, zoom float64) world.Transform {
	if zoom <= 0 {
		zoom = 1
	}
	gridW, gridH = gridW*zoom, gridH*zoom
	px, py = px*zoom, py*zoom

	tx := screenW/2 - px
	if gridW <= screenW {
		tx = (screenW - gridW) / 2
	} else {
		tx = clamp(tx, screenW-gridW, 0)
	}

	// grid-local y points up, screen y points down
	ty := screenH/2 + py
	if gridH <= screenH {
		ty = (screenH + gridH) / 2
	} else {
		ty = clamp(ty, screenH, gridH)
	}
	return world.TranslateScale(tx, ty, zoom, -zoom)
}

// Fit returns the node transform showing the whole grid, centred, with
// margin pixels to spare on the tighter axis. It also returns the scale.
func Fit(screenW, screenH, gridW, gridH, margin float64) (world.Transform, float64) {
	s := 1.0
	if gridW > 0 && gridH > 0 {
		s = min((screenW-2*margin)/gridW, (screenH-2*margin)/gridH)
	}
	if s <= 0 {
		s = 1
	}
	tx := (screenW - gridW*s) / 2
	ty := (screenH + gridH*s) / 2
	return world.TranslateScale(tx, ty, s, -s), s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
