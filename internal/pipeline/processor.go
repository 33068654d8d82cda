package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnyUserName/textart-cli/internal/art"
	"github.com/AnyUserName/textart-cli/internal/hasher"
	"github.com/AnyUserName/textart-cli/internal/manifest"
	"github.com/AnyUserName/textart-cli/internal/output"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// processResult holds the result of processing a single source image.
type processResult struct {
	key   string
	asset manifest.Asset
	err   error
}

// processImage handles a single source image: decode, convert, write.
func processImage(src Source, cfg Config, registry *output.Registry) processResult {
	result := processResult{key: src.Key}

	img, err := imaging.Open(src.AbsPath, imaging.AutoOrientation(true))
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", src.RelPath, err)
		return result
	}

	bounds := img.Bounds()
	target := cfg.Profile.Resolution(bounds.Dx(), bounds.Dy())
	block := cfg.CharMap.Subpixels()

	frame, err := art.Convert(img, target, cfg.CharMap, cfg.Profile.Lines)
	if err != nil {
		result.err = fmt.Errorf("convert %s: %w", src.RelPath, err)
		return result
	}
	avg := frame.AvgColor()

	result.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Format: src.Format,
			Size:   src.Size,
		},
		Cols:     target.Width,
		Rows:     target.Height,
		Block:    [2]int{block.W, block.H},
		AvgColor: &avg,
	}

	keyDir := filepath.Dir(src.Key)
	if keyDir != "." {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755); err != nil {
			result.err = fmt.Errorf("create dir for %s: %w", src.Key, err)
			return result
		}
	}

	for _, format := range registry.ResolveFormats(cfg.Profile.Formats) {
		w := registry.Get(format)
		data, err := w.Encode(frame)
		if err != nil {
			if cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[textart] warn: encode %s@%v as %s: %v\n",
					src.Key, target, format, err)
			}
			continue
		}

		contentHash := hasher.ContentHash(data, 16)

		// key.COLSxROWS.hash.ext
		fileName := fmt.Sprintf("%s.%dx%d.%s.%s",
			filepath.Base(src.Key), target.Width, target.Height, contentHash[:8], w.Extension())
		relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))

		outPath := filepath.Join(cfg.OutputDir, relPath)
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			result.err = fmt.Errorf("write %s: %w", relPath, err)
			return result
		}

		result.asset.Outputs = append(result.asset.Outputs, manifest.Output{
			Format: format,
			Cols:   target.Width,
			Rows:   target.Height,
			Size:   int64(len(data)),
			Hash:   contentHash,
			Path:   relPath,
		})
	}

	return result
}
