package charmap

// BrailleBlank is the empty Braille pattern; dot bits are ORed onto it.
const BrailleBlank = 0x2800

// Braille encodes a 2x4 block as an eight-dot Braille pattern.
//
//	+------+
//	|01  08|
//	|02  10|
//	|04  20|
//	|40  80|
//	+------+
type Braille struct{}

var brailleDots = []dot{
	{0, 0, 0x01},
	{1, 0, 0x08},
	{0, 1, 0x02},
	{1, 1, 0x10},
	{0, 2, 0x04},
	{1, 2, 0x20},
	{0, 3, 0x40},
	{1, 3, 0x80},
}

func (Braille) Subpixels() Size    { return Size{W: 2, H: 4} }
func (Braille) LinePrefix() string { return "" }
func (Braille) charMap()           {}

func (c Braille) Glyph(b Block) rune {
	b.require(c.Subpixels())
	return BrailleBlank | rune(mask(b, brailleDots))
}
