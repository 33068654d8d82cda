// Package art walks a luminance buffer cell by cell and assembles the
// glyphs a CharMap picks into lines of text.
package art

import (
	"fmt"
	"image"
	"runtime"
	"strings"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/AnyUserName/textart-cli/internal/resize"
)

// LineBreak terminates every line but the last when line breaks are on.
var LineBreak = lineBreak(runtime.GOOS)

func lineBreak(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Render encodes lum into target.Height lines of target.Width glyphs.
// Each line starts with cm.LinePrefix(). With newLines set, every line but
// the last ends in LineBreak.
//
// lum must be exactly target scaled by cm.Subpixels(); anything else means
// the buffer was produced for a different CharMap, and Render panics.
func Render(lum *image.Gray, target resize.Resolution, cm charmap.CharMap, newLines bool) []string {
	block := cm.Subpixels()
	want := target.Scale(block)
	b := lum.Bounds()
	if b.Dx() != want.Width || b.Dy() != want.Height {
		panic(fmt.Sprintf("art: luminance buffer %dx%d does not match %v grid of %v blocks",
			b.Dx(), b.Dy(), target, block))
	}

	prefix := cm.LinePrefix()
	lines := make([]string, 0, target.Height)
	var sb strings.Builder
	for y := 0; y < target.Height; y++ {
		sb.Reset()
		sb.Grow(len(prefix) + target.Width*4 + len(LineBreak))
		sb.WriteString(prefix)
		for x := 0; x < target.Width; x++ {
			sb.WriteRune(cm.Glyph(charmap.NewBlock(lum, x*block.W, y*block.H, block)))
		}
		if newLines && y < target.Height-1 {
			sb.WriteString(LineBreak)
		}
		lines = append(lines, sb.String())
	}
	return lines
}
