// Package terminal answers questions about the output terminal for the dev
// dump: whether it is one, and how big it is.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fd returns the file descriptor behind w, or -1 if w is not a file.
func fd(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	d := fd(w)
	return d >= 0 && term.IsTerminal(d)
}

// GetSize returns the width and height of the terminal behind w.
// Falls back to defaults if the size cannot be determined.
func GetSize(w io.Writer) (width, height int) {
	d := fd(w)
	if d < 0 {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(d)
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Fits reports whether a block of cols x rows characters fits the terminal
// behind w.
func Fits(w io.Writer, cols, rows int) bool {
	width, height := GetSize(w)
	return cols <= width && rows <= height
}
