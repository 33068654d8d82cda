package resize

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/AnyUserName/textart-cli/internal/charmap"
)

func solidImg(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func gradientImg(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255,
			})
		}
	}
	return img
}

func allCharMaps(t *testing.T) []charmap.CharMap {
	t.Helper()
	var out []charmap.CharMap
	for _, name := range charmap.Names() {
		cm, err := charmap.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, cm)
	}
	return out
}

func TestResize_Dimensions(t *testing.T) {
	src := gradientImg(97, 61)
	targets := []Resolution{{1, 1}, {1, 7}, {13, 1}, {40, 20}, {120, 80}, {200, 3}}
	for _, cm := range allCharMaps(t) {
		block := cm.Subpixels()
		for _, target := range targets {
			lum, col, err := Resize(src, target, block)
			if err != nil {
				t.Fatalf("%T %v: %v", cm, target, err)
			}
			lb := lum.Bounds()
			if lb.Min != (image.Point{}) || lb.Dx() != target.Width*block.W || lb.Dy() != target.Height*block.H {
				t.Errorf("%T %v: luminance %v, want %dx%d", cm, target, lb, target.Width*block.W, target.Height*block.H)
			}
			cb := col.Bounds()
			if cb.Min != (image.Point{}) || cb.Dx() != target.Width || cb.Dy() != target.Height {
				t.Errorf("%T %v: color %v, want %v", cm, target, cb, target)
			}
		}
	}
}

func TestResize_OffsetSource(t *testing.T) {
	src := gradientImg(64, 64).SubImage(image.Rect(10, 10, 50, 40))
	lum, col, err := Resize(src, Resolution{8, 5}, charmap.Size{W: 2, H: 4})
	if err != nil {
		t.Fatal(err)
	}
	if lum.Bounds() != image.Rect(0, 0, 16, 20) {
		t.Errorf("luminance bounds %v", lum.Bounds())
	}
	if col.Bounds() != image.Rect(0, 0, 8, 5) {
		t.Errorf("color bounds %v", col.Bounds())
	}
}

func TestResize_UniformGray(t *testing.T) {
	src := solidImg(4, 4, color.NRGBA{128, 128, 128, 255})
	lum, col, err := Resize(src, Resolution{1, 1}, charmap.Size{W: 1, H: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := lum.GrayAt(0, 0).Y; got != 128 {
		t.Errorf("luminance: got %d, want 128", got)
	}
	if got := col.NRGBAAt(0, 0); got.R != 128 || got.G != 128 || got.B != 128 {
		t.Errorf("color: got %v", got)
	}
}

func TestResize_ColorIsCellAverage(t *testing.T) {
	// Left half black, right half white; one cell covering both.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 255})
	lum, col, err := Resize(src, Resolution{1, 1}, charmap.Size{W: 2, H: 1})
	if err != nil {
		t.Fatal(err)
	}
	// Subpixel samples stay crisp.
	if lum.GrayAt(0, 0).Y != 0 || lum.GrayAt(1, 0).Y != 255 {
		t.Errorf("luminance not nearest-neighbour: %v", lum.Pix)
	}
	if r := col.NRGBAAt(0, 0).R; r < 120 || r > 135 {
		t.Errorf("color not averaged: R=%d", r)
	}
}

func TestResize_IgnoresAlpha(t *testing.T) {
	for _, a := range []uint8{0, 100, 255} {
		src := solidImg(4, 4, color.NRGBA{255, 255, 255, a})
		lum, col, err := Resize(src, Resolution{1, 1}, charmap.Size{W: 1, H: 1})
		if err != nil {
			t.Fatal(err)
		}
		if got := lum.GrayAt(0, 0).Y; got != 255 {
			t.Errorf("alpha %d: luminance %d, want 255", a, got)
		}
		if got := col.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
			t.Errorf("alpha %d: color %v, want opaque white", a, got)
		}
	}
}

func TestResize_TransparentCellAverage(t *testing.T) {
	// A fully transparent white half must still count toward the cell color.
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 255})
	src.SetNRGBA(1, 0, color.NRGBA{255, 255, 255, 0})
	lum, col, err := Resize(src, Resolution{1, 1}, charmap.Size{W: 2, H: 1})
	if err != nil {
		t.Fatal(err)
	}
	if lum.GrayAt(1, 0).Y != 255 {
		t.Errorf("transparent sample: luminance %d, want 255", lum.GrayAt(1, 0).Y)
	}
	if c := col.NRGBAAt(0, 0); c.A != 255 || c.R < 120 || c.R > 135 {
		t.Errorf("color: got %v, want opaque mid gray", c)
	}
}

func TestResize_LumaWeights(t *testing.T) {
	cases := []struct {
		c    color.NRGBA
		want uint8
	}{
		{color.NRGBA{255, 0, 0, 255}, 54},
		{color.NRGBA{0, 255, 0, 255}, 182},
		{color.NRGBA{0, 0, 255, 255}, 18},
		{color.NRGBA{128, 128, 128, 255}, 128},
		{color.NRGBA{255, 255, 255, 255}, 255},
	}
	for _, tc := range cases {
		lum, _, err := Resize(solidImg(2, 2, tc.c), Resolution{1, 1}, charmap.Size{W: 1, H: 1})
		if err != nil {
			t.Fatal(err)
		}
		if got := lum.GrayAt(0, 0).Y; got != tc.want {
			t.Errorf("%v: luminance %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestResize_ZeroDimensions(t *testing.T) {
	src := solidImg(4, 4, color.NRGBA{255, 0, 0, 255})
	cases := []struct {
		name   string
		src    image.Image
		target Resolution
	}{
		{"zero width", src, Resolution{0, 5}},
		{"zero height", src, Resolution{5, 0}},
		{"negative", src, Resolution{-1, 5}},
		{"empty source", image.NewNRGBA(image.Rect(0, 0, 0, 4)), Resolution{5, 5}},
	}
	for _, tc := range cases {
		lum, col, err := Resize(tc.src, tc.target, charmap.Size{W: 2, H: 3})
		if !errors.Is(err, ErrDimension) {
			t.Errorf("%s: got %v, want ErrDimension", tc.name, err)
		}
		if lum != nil || col != nil {
			t.Errorf("%s: partial output", tc.name)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("%s: not a *Error", tc.name)
		}
	}
}

func TestResize_BackendErrors(t *testing.T) {
	if _, _, err := Resize(nil, Resolution{1, 1}, charmap.Size{W: 1, H: 1}); !errors.Is(err, ErrBackend) {
		t.Errorf("nil source: got %v", err)
	}
	src := solidImg(2, 2, color.NRGBA{A: 255})
	_, _, err := Resize(src, Resolution{1 << 14, 1 << 14}, charmap.Size{W: 2, H: 4})
	if !errors.Is(err, ErrBackend) {
		t.Errorf("oversized: got %v", err)
	}
	var perr *Error
	if errors.As(err, &perr) && perr.Stage != "subpixel" {
		t.Errorf("stage: got %q", perr.Stage)
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		srcW, srcH, cols, rows int
		want                   Resolution
	}{
		{200, 100, 80, 0, Resolution{80, 20}},
		{200, 100, 0, 20, Resolution{80, 20}},
		{200, 100, 30, 7, Resolution{30, 7}},
		{1000, 1, 10, 0, Resolution{10, 1}},
		{100, 100, 0, 0, Resolution{0, 0}},
	}
	for _, tc := range cases {
		if got := Fit(tc.srcW, tc.srcH, tc.cols, tc.rows); got != tc.want {
			t.Errorf("Fit(%d,%d,%d,%d) = %v, want %v", tc.srcW, tc.srcH, tc.cols, tc.rows, got, tc.want)
		}
	}
}

func BenchmarkResize(b *testing.B) {
	src := gradientImg(1024, 768)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := Resize(src, Resolution{160, 60}, charmap.Size{W: 2, H: 4}); err != nil {
			b.Fatal(err)
		}
	}
}
