package output

import (
	"bytes"

	"github.com/AnyUserName/textart-cli/internal/art"
)

// TextWriter writes the lines as rendered plus a final newline.
type TextWriter struct{}

func (w *TextWriter) Format() string    { return "txt" }
func (w *TextWriter) Extension() string { return "txt" }

func (w *TextWriter) Encode(f *art.Frame) ([]byte, error) {
	var buf bytes.Buffer
	for _, line := range f.Lines {
		buf.WriteString(line)
	}
	buf.WriteString(art.LineBreak)
	return buf.Bytes(), nil
}
