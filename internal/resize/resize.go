// Package resize produces the two buffers a render pass needs from a
// decoded image: luminance at subpixel resolution for glyph sampling and
// color at grid resolution for per-cell tinting.
package resize

import (
	"fmt"
	"image"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/disintegration/imaging"
)

// MaxPixels bounds the pixel count of a resampled buffer.
const MaxPixels = 1 << 26

// Resolution is a grid size: cells for targets, pixels for buffers.
type Resolution struct {
	Width, Height int
}

func (r Resolution) String() string { return fmt.Sprintf("%dx%d", r.Width, r.Height) }

// Scale multiplies r component-wise by a block size.
func (r Resolution) Scale(s charmap.Size) Resolution {
	return Resolution{Width: r.Width * s.W, Height: r.Height * s.H}
}

// Resize scales src twice. The luminance buffer is a nearest-neighbour
// resample to target scaled by block, so every sample is a real source
// pixel the glyph can threshold. The color buffer is a box-filter
// downsample of that intermediate to target, averaging each cell.
// Alpha is discarded after the first stage, so transparent pixels keep
// their stored color in both buffers.
//
// Both buffers have their origin at (0, 0).
func Resize(src image.Image, target Resolution, block charmap.Size) (*image.Gray, *image.NRGBA, error) {
	if block.W <= 0 || block.H <= 0 {
		return nil, nil, dimErr("subpixel", "block", block.W, block.H)
	}
	sub, err := resample("subpixel", src, target.Scale(block), imaging.NearestNeighbor)
	if err != nil {
		return nil, nil, err
	}
	dropAlpha(sub)
	col, err := resample("color", sub, target, imaging.Box)
	if err != nil {
		return nil, nil, err
	}
	return luminance(sub), col, nil
}

func resample(stage string, src image.Image, dst Resolution, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	if src == nil {
		return nil, backendErr(stage, "nil source image")
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, dimErr(stage, "source", b.Dx(), b.Dy())
	}
	if dst.Width <= 0 || dst.Height <= 0 {
		return nil, dimErr(stage, "target", dst.Width, dst.Height)
	}
	if dst.Width > MaxPixels/dst.Height {
		return nil, backendErr(stage, "%v exceeds %d pixels", dst, MaxPixels)
	}

	out := imaging.Resize(src, dst.Width, dst.Height, filter)
	if got := out.Bounds(); got.Dx() != dst.Width || got.Dy() != dst.Height {
		return nil, backendErr(stage, "resampler returned %dx%d, want %v", got.Dx(), got.Dy(), dst)
	}
	return out, nil
}

// dropAlpha marks every pixel opaque without touching its color channels.
func dropAlpha(img *image.NRGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}

// Rec. 709 luma weights, scaled by 10000.
const (
	lumaR = 2126
	lumaG = 7152
	lumaB = 722
)

// luminance converts to 8-bit gray with Rec. 709 weights, ignoring alpha.
func luminance(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for x := range dst {
			p := src[x*4 : x*4+3]
			dst[x] = uint8((lumaR*uint32(p[0]) + lumaG*uint32(p[1]) + lumaB*uint32(p[2])) / 10000)
		}
	}
	return gray
}
