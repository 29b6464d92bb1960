package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Console reads commands and keys from a terminal. It backs the headless
// dev console.
type Console struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewConsole reads from in and echoes to out.
func NewConsole(in *os.File, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

// IsTerminal reports whether the console input is an interactive terminal.
func (c *Console) IsTerminal() bool {
	return term.IsTerminal(int(c.in.Fd()))
}

// ReadLine reads a line of input.
func (c *Console) ReadLine() (string, error) {
	if c.reader == nil {
		c.reader = bufio.NewReader(c.in)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte in raw mode
func (c *Console) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := c.in.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func (c *Console) tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}
	b2, err := c.readByte()
	if err != nil {
		return ""
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}
	b3, err := c.readByte()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// ReadKey reads one key press in raw mode and returns it as a raw input.
// Arrow keys map to their arrow codes, printable keys to themselves, Ctrl+C
// to "quit" and Enter to "enter".
func (c *Console) ReadKey() (RawInput, error) {
	// the buffered reader would swallow bytes raw mode needs
	c.reader = nil

	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b, err := c.readByte()
	if err != nil {
		return RawInput{}, err
	}
	raw := RawInput{Device: DeviceTerminal, Timestamp: time.Now()}
	switch {
	case b == 0x1b:
		raw.Code = c.tryReadArrowKey(b)
	case b == 3:
		raw.Code = "quit"
	case b == '\n' || b == '\r':
		raw.Code = "enter"
	case b == ' ':
		raw.Code = "space"
	case b >= 32 && b < 127:
		raw.Code = strings.ToLower(string(b))
	}
	return raw, nil
}

// Printf writes to the console output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
