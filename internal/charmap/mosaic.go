package charmap

import "fmt"

// Sextant layout shared by Mosaic and Teletext.
//
//	+------+
//	|01  02|
//	|04  08|
//	|10  20|
//	+------+
var sextantDots = []dot{
	{0, 0, 0x01},
	{1, 0, 0x02},
	{0, 1, 0x04},
	{1, 1, 0x08},
	{0, 2, 0x10},
	{1, 2, 0x20},
}

// SextantBase is the first codepoint of the Symbols for Legacy Computing
// sextant run (U+1FB00 BLOCK SEXTANT-1).
const SextantBase = 0x1FB00

// sextantRange maps a run of masks onto consecutive codepoints starting at
// SextantBase+off. The Unicode block omits the patterns that already exist
// as space, half blocks and the full block, hence the gaps.
type sextantRange struct {
	lo, hi uint8
	off    rune
}

var sextantRanges = []sextantRange{
	{0x01, 0x14, 0x01},
	{0x16, 0x29, 0x02},
	{0x2B, 0x3E, 0x03},
}

var sextantSpecial = map[uint8]rune{
	0x00: ' ',
	0x15: '▌',
	0x2A: '▐',
	0x3F: '█',
}

// SextantRune returns the glyph for a 6-bit sextant mask.
// It panics if m > 0x3F.
func SextantRune(m uint8) rune {
	if r, ok := sextantSpecial[m]; ok {
		return r
	}
	for _, sr := range sextantRanges {
		if m >= sr.lo && m <= sr.hi {
			return SextantBase + rune(m) - sr.off
		}
	}
	panic(fmt.Sprintf("charmap: sextant mask %#x out of range", m))
}

// Mosaic encodes a 2x3 block as a Unicode sextant character.
type Mosaic struct{}

func (Mosaic) Subpixels() Size    { return Size{W: 2, H: 3} }
func (Mosaic) LinePrefix() string { return "" }
func (Mosaic) charMap()           {}

func (c Mosaic) Glyph(b Block) rune {
	b.require(c.Subpixels())
	return SextantRune(mask(b, sextantDots))
}
