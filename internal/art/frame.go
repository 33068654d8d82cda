package art

import (
	"image"
	"strings"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/AnyUserName/textart-cli/internal/resize"
)

// Frame is one converted image.
type Frame struct {
	Lines   []string
	Colors  *image.NRGBA // one pixel per cell
	Target  resize.Resolution
	CharMap charmap.CharMap
}

// Convert resizes src for cm and renders it. It holds no state, so
// independent frames may be converted concurrently.
func Convert(src image.Image, target resize.Resolution, cm charmap.CharMap, newLines bool) (*Frame, error) {
	lum, col, err := resize.Resize(src, target, cm.Subpixels())
	if err != nil {
		return nil, err
	}
	return &Frame{
		Lines:   Render(lum, target, cm, newLines),
		Colors:  col,
		Target:  target,
		CharMap: cm,
	}, nil
}

// String joins the lines as rendered.
func (f *Frame) String() string {
	return strings.Join(f.Lines, "")
}

// Cells returns the glyphs of row y without the line prefix or break.
func (f *Frame) Cells(y int) []rune {
	line := strings.TrimPrefix(f.Lines[y], f.CharMap.LinePrefix())
	cells := []rune(line)
	if len(cells) > f.Target.Width {
		cells = cells[:f.Target.Width]
	}
	return cells
}

// AvgColor averages the color buffer.
func (f *Frame) AvgColor() [3]uint8 {
	b := f.Colors.Bounds()
	n := uint64(b.Dx() * b.Dy())
	if n == 0 {
		return [3]uint8{}
	}
	var r, g, bl uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := f.Colors.NRGBAAt(x, y)
			r += uint64(c.R)
			g += uint64(c.G)
			bl += uint64(c.B)
		}
	}
	return [3]uint8{uint8(r / n), uint8(g / n), uint8(bl / n)}
}
