package theme

import (
	"io"
	"sync"
)

// Palette is the set of ANSI sequences used by the REPL.
type Palette struct {
	Prompt string
	Accent string
	Muted  string
	Error  string
	Reset  string
}

var palettes = map[Theme]Palette{
	Light: {Prompt: "\x1b[34m", Accent: "\x1b[35m", Muted: "\x1b[90m", Error: "\x1b[31m", Reset: "\x1b[0m"},
	Dark:  {Prompt: "\x1b[96m", Accent: "\x1b[93m", Muted: "\x1b[37m", Error: "\x1b[91m", Reset: "\x1b[0m"},
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	return palettes[t]
}

// Terminal is an Applier that switches the palette used for output and
// writes the OSC 11 background hint to the terminal.
type Terminal struct {
	mu      sync.RWMutex
	palette Palette
	out     io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{palette: palettes[Light], out: out}
}

func (t *Terminal) Apply(th Theme) {
	t.mu.Lock()
	t.palette = PaletteFor(th)
	t.mu.Unlock()

	if t.out == nil {
		return
	}
	bg := "#ffffff"
	if th == Dark {
		bg = "#1e1e1e"
	}
	_, _ = io.WriteString(t.out, "\x1b]11;"+bg+"\x07")
}

// Palette returns the active palette.
func (t *Terminal) Palette() Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.palette
}

// Paint wraps s in color and resets afterwards.
func (t *Terminal) Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + t.Palette().Reset
}
