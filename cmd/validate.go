package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/AnyUserName/textart-cli/internal/hasher"
	"github.com/AnyUserName/textart-cli/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a textart manifest and check referenced files",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	errs := validateManifest(m, filepath.Dir(manifestPath))
	if len(errs) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d assets, %d outputs, all files present and matching\n", m.Stats.TotalAssets, m.Stats.TotalOutputs)
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errs))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	// Presets fix the block size; custom ramps are always 1x1.
	wantBlock := [2]int{1, 1}
	if m.CharMap != charmap.CustomName {
		cm, err := charmap.Get(m.CharMap)
		if err != nil {
			errs = append(errs, fmt.Sprintf("charmap: %v", err))
		} else {
			s := cm.Subpixels()
			wantBlock = [2]int{s.W, s.H}
		}
	}

	keys := make([]string, 0, len(m.Assets))
	for key := range m.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		asset := m.Assets[key]
		if asset.Original.Width <= 0 || asset.Original.Height <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid original dimensions %dx%d",
				key, asset.Original.Width, asset.Original.Height))
		}
		if asset.Cols <= 0 || asset.Rows <= 0 {
			errs = append(errs, fmt.Sprintf("asset %q: invalid grid %dx%d", key, asset.Cols, asset.Rows))
		}
		if asset.Block != wantBlock {
			errs = append(errs, fmt.Sprintf("asset %q: block %v does not match charmap %s %v",
				key, asset.Block, m.CharMap, wantBlock))
		}
		if len(asset.Outputs) == 0 {
			errs = append(errs, fmt.Sprintf("asset %q: no outputs", key))
		}

		seenPaths := map[string]bool{}
		for i, o := range asset.Outputs {
			if o.Format == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: empty format", key, i))
			}
			if o.Cols != asset.Cols || o.Rows != asset.Rows {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: grid %dx%d differs from asset %dx%d",
					key, i, o.Cols, o.Rows, asset.Cols, asset.Rows))
			}
			if o.Hash == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: missing hash", key, i))
			}
			if o.Path == "" {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: missing path", key, i))
				continue
			}

			if seenPaths[o.Path] {
				errs = append(errs, fmt.Sprintf("asset %q output[%d]: duplicate path %q", key, i, o.Path))
			}
			seenPaths[o.Path] = true

			errs = append(errs, checkFile(key, i, o, filepath.Join(baseDir, o.Path))...)
		}
	}

	// Verify stats consistency.
	outputCount := 0
	for _, a := range m.Assets {
		outputCount += len(a.Outputs)
	}
	if m.Stats.TotalAssets != len(m.Assets) {
		errs = append(errs, fmt.Sprintf("stats.total_assets mismatch: %d != %d", m.Stats.TotalAssets, len(m.Assets)))
	}
	if m.Stats.TotalOutputs != outputCount {
		errs = append(errs, fmt.Sprintf("stats.total_outputs mismatch: %d != %d", m.Stats.TotalOutputs, outputCount))
	}

	return errs
}

// checkFile compares a written output against its manifest entry.
func checkFile(key string, i int, o manifest.Output, path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("asset %q output[%d]: file not found: %s", key, i, o.Path)}
	}
	defer f.Close()

	var errs []string
	if info, err := f.Stat(); err == nil && o.Size > 0 && info.Size() != o.Size {
		errs = append(errs, fmt.Sprintf("asset %q output[%d]: size mismatch: manifest=%d, disk=%d",
			key, i, o.Size, info.Size()))
	}
	sum, err := hasher.ContentHashReader(f, len(o.Hash))
	if err != nil {
		errs = append(errs, fmt.Sprintf("asset %q output[%d]: read: %v", key, i, err))
	} else if o.Hash != "" && sum != o.Hash {
		errs = append(errs, fmt.Sprintf("asset %q output[%d]: hash mismatch: manifest=%s, disk=%s",
			key, i, o.Hash, sum))
	}
	return errs
}
