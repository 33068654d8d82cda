package pipeline

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/AnyUserName/textart-cli/internal/hasher"
	"github.com/AnyUserName/textart-cli/internal/profile"
)

func gradient(w, h int) *image.NRGBA {
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

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		t.Fatal(err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeJPEG(t, filepath.Join(dir, "banner.jpg"), gradient(400, 200))
	writePNG(t, filepath.Join(dir, "cards", "card-1.png"), gradient(120, 90))
	writePNG(t, filepath.Join(dir, ".cache", "skip.png"), gradient(8, 8))
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# not an image\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestScanImages(t *testing.T) {
	dir := fixtureDir(t)
	sources, err := ScanImages(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2: %+v", len(sources), sources)
	}
	if sources[0].Key != "banner" || sources[0].Format != "jpeg" {
		t.Errorf("first: %+v", sources[0])
	}
	if sources[1].Key != "cards/card-1" || sources[1].RelPath != "cards/card-1.png" {
		t.Errorf("second: %+v", sources[1])
	}
	if sources[1].Size <= 0 {
		t.Error("size not recorded")
	}
}

func TestRun(t *testing.T) {
	in := fixtureDir(t)
	out := t.TempDir()
	prof := profile.Get("braille")
	prof.Cols = 20

	p := New(Config{
		InputDir:  in,
		OutputDir: out,
		Profile:   prof,
		CharMap:   charmap.Braille{},
		Workers:   2,
	})
	m, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}
	if m.CharMap != "braille" || m.Profile != "braille" {
		t.Errorf("manifest header: %q %q", m.Profile, m.CharMap)
	}
	if m.Stats.TotalAssets != 2 || m.Stats.TotalOutputs != 4 {
		t.Errorf("stats: %+v", m.Stats)
	}

	a, ok := m.Assets["banner"]
	if !ok {
		t.Fatal("banner missing")
	}
	// 400x200 at 20 cols: 20 * 200/400 / 2 = 5 rows.
	if a.Cols != 20 || a.Rows != 5 || a.Block != [2]int{2, 4} {
		t.Errorf("banner grid: %dx%d block %v", a.Cols, a.Rows, a.Block)
	}
	for _, o := range a.Outputs {
		data, err := os.ReadFile(filepath.Join(out, o.Path))
		if err != nil {
			t.Fatalf("output %s: %v", o.Path, err)
		}
		if int64(len(data)) != o.Size {
			t.Errorf("%s: size %d, manifest %d", o.Path, len(data), o.Size)
		}
		if hasher.ContentHash(data, 16) != o.Hash {
			t.Errorf("%s: hash mismatch", o.Path)
		}
		if !strings.Contains(o.Path, ".20x5."+o.Hash[:8]+".") {
			t.Errorf("%s: unexpected name", o.Path)
		}
	}

	if _, ok := m.Assets["cards/card-1"]; !ok {
		t.Error("nested asset missing")
	}
}

func TestRun_NoImages(t *testing.T) {
	p := New(Config{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
		Profile:   profile.Get("terminal"),
		CharMap:   charmap.NewLookup(charmap.Chars1),
	})
	if _, err := p.Run(); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestRun_AllFail(t *testing.T) {
	in := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := New(Config{
		InputDir:  in,
		OutputDir: t.TempDir(),
		Profile:   profile.Get("terminal"),
		CharMap:   charmap.NewLookup(charmap.Chars1),
	})
	if _, err := p.Run(); err == nil {
		t.Error("expected error when every image fails")
	}
}
