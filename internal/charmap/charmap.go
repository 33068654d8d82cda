// Package charmap maps blocks of luminance samples to single runes.
//
// A CharMap declares the block size it samples (its subpixels), turns one
// block into one rune, and may require a prefix at the start of every line.
// The set of variants is closed: Lookup ramps, Braille, Mosaic (Unicode
// sextants) and Teletext (legacy private-use mosaics).
package charmap

import (
	"fmt"
	"image"
)

// Threshold is the luminance a sample must exceed to count as lit in the
// dot-matrix and mosaic variants.
const Threshold = 127

// Size is a block size in pixels.
type Size struct {
	W, H int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// CharMap selects one rune per block of luminance samples.
type CharMap interface {
	// Subpixels returns the block size Glyph expects.
	Subpixels() Size

	// Glyph returns the rune representing the block.
	// It panics if the block is smaller than Subpixels.
	Glyph(b Block) rune

	// LinePrefix returns a string every output line must start with.
	LinePrefix() string

	charMap()
}

// Block is a read-only window into a luminance buffer.
type Block struct {
	img  *image.Gray
	rect image.Rectangle
}

// NewBlock returns the block of the given size whose top-left sample is at
// (x, y) relative to the buffer origin. It panics if the block does not fit
// inside the buffer.
func NewBlock(img *image.Gray, x, y int, size Size) Block {
	b := img.Bounds()
	r := image.Rect(x, y, x+size.W, y+size.H).Add(b.Min)
	if size.W <= 0 || size.H <= 0 || !r.In(b) {
		panic(fmt.Sprintf("charmap: block %v outside buffer %v", r, b))
	}
	return Block{img: img, rect: r}
}

// Size returns the block dimensions.
func (b Block) Size() Size {
	return Size{W: b.rect.Dx(), H: b.rect.Dy()}
}

// Luma returns the sample at (x, y) relative to the block.
func (b Block) Luma(x, y int) uint8 {
	p := image.Pt(x, y).Add(b.rect.Min)
	if x < 0 || y < 0 || !p.In(b.rect) {
		panic(fmt.Sprintf("charmap: sample (%d,%d) outside %v block", x, y, b.Size()))
	}
	return b.img.Pix[b.img.PixOffset(p.X, p.Y)]
}

// require panics when the block cannot hold a sample grid of size s.
func (b Block) require(s Size) {
	got := b.Size()
	if got.W < s.W || got.H < s.H {
		panic(fmt.Sprintf("charmap: need %v block, got %v", s, got))
	}
}

// dot is one sample position and the bit it contributes when lit.
type dot struct {
	x, y int
	bit  uint8
}

// mask samples the block at each dot and ORs the bits of lit samples.
func mask(b Block, dots []dot) uint8 {
	var m uint8
	for _, d := range dots {
		if b.Luma(d.x, d.y) > Threshold {
			m |= d.bit
		}
	}
	return m
}
