package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/AnyUserName/textart-cli/internal/art"
)

const ansiReset = "\x1b[0m"

// ANSIWriter tints every glyph with the 24-bit color of its cell.
type ANSIWriter struct{}

func (w *ANSIWriter) Format() string    { return "ans" }
func (w *ANSIWriter) Extension() string { return "ans" }

func (w *ANSIWriter) Encode(f *art.Frame) ([]byte, error) {
	if f.Colors == nil {
		return nil, fmt.Errorf("frame has no color buffer")
	}
	b := f.Colors.Bounds()
	if b.Dx() != f.Target.Width || b.Dy() != f.Target.Height {
		return nil, fmt.Errorf("color buffer %dx%d does not match grid %v", b.Dx(), b.Dy(), f.Target)
	}

	var buf bytes.Buffer
	buf.Grow(len(f.Lines) * f.Target.Width * 24)
	prefix := f.CharMap.LinePrefix()
	for y, line := range f.Lines {
		buf.WriteString(prefix)
		var last [3]uint8
		for x, r := range f.Cells(y) {
			c := f.Colors.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			// Runs of the same color share one escape.
			if cur := [3]uint8{c.R, c.G, c.B}; x == 0 || cur != last {
				fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
				last = cur
			}
			buf.WriteRune(r)
		}
		buf.WriteString(ansiReset)
		if strings.HasSuffix(line, art.LineBreak) {
			buf.WriteString(art.LineBreak)
		}
	}
	buf.WriteString(art.LineBreak)
	return buf.Bytes(), nil
}
