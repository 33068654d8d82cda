package charmap

// Ramps ordered from sparse to dense.
const (
	// 10 chars, ASCII.
	Chars1 = ` .:-=+*#%@`
	// 67 chars, ASCII.
	Chars2 = ` .'` + "`" + `^",:;Il!i~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$`
	// 92 chars.
	Chars3 = ` ` + "`" + `.-':_,^=;><+!rc*/z?sLTv)J7(|Fi{C}fI31tlu[neoZ5Yxjya]2ESwqkP6h9d4VpOGbUAKXHm8RD#$Bg0MNWQ%&@`

	Solid      = "█"
	Dotted     = "⣿"
	Gradient   = " ░▒▓█"
	BlackWhite = " █"
	BWDotted   = " ⣿"
)

// Lookup picks a rune from a ramp by the luminance of a single sample.
type Lookup []rune

// NewLookup returns a Lookup over the runes of ramp.
func NewLookup(ramp string) Lookup { return Lookup([]rune(ramp)) }

func (Lookup) Subpixels() Size    { return Size{W: 1, H: 1} }
func (Lookup) LinePrefix() string { return "" }
func (Lookup) charMap()           {}

// Glyph returns l[len(l)*L/256]; L=255 maps to the last entry at most.
func (l Lookup) Glyph(b Block) rune {
	b.require(l.Subpixels())
	return l[len(l)*int(b.Luma(0, 0))/256]
}
