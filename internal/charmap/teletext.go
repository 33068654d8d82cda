package charmap

import "fmt"

// Teletext mosaics live in the private-use area as mapped by teletext
// fonts: 0xE020-0xE03F for masks without the bottom-right cell and
// 0xE060-0xE07F for masks with it, mirroring the 0x20/0x60 columns of the
// teletext G1 character set.
const (
	TeletextBase = 0xE020
	TeletextMin  = 0xE000
	TeletextMax  = 0xE0FF

	// TeletextPrefix switches a line into contiguous graphics mode.
	TeletextPrefix = "\uE017"
)

// TeletextRune returns the glyph for a 6-bit sextant mask.
// It panics if m >= 0x40.
func TeletextRune(m uint8) rune {
	if m >= 0x40 {
		panic(fmt.Sprintf("charmap: teletext mask %#x out of range", m))
	}
	r := TeletextBase + rune(m&0x1F) + rune(m&0x20)<<1
	if r < TeletextMin || r > TeletextMax {
		panic(fmt.Sprintf("charmap: teletext rune %U out of range", r))
	}
	return r
}

// Teletext encodes a 2x3 block as a teletext mosaic character. Every line
// must start with TeletextPrefix.
type Teletext struct{}

func (Teletext) Subpixels() Size    { return Size{W: 2, H: 3} }
func (Teletext) LinePrefix() string { return TeletextPrefix }
func (Teletext) charMap()           {}

func (c Teletext) Glyph(b Block) rune {
	b.require(c.Subpixels())
	return TeletextRune(mask(b, sextantDots))
}
