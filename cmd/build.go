package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AnyUserName/textart-cli/internal/manifest"
	"github.com/AnyUserName/textart-cli/internal/pipeline"
	"github.com/AnyUserName/textart-cli/internal/profile"
	"github.com/spf13/cobra"
)

var (
	buildOutDir  string
	buildProfile string
	buildWorkers int
	buildCols    int
	buildRows    int
	buildCharMap string
	buildChars   string
	buildFormats []string
)

var buildCmd = &cobra.Command{
	Use:   "build <input_dir>",
	Short: "Convert a directory of images and write a manifest",
	Long: `Scans input directory for images (png, jpg, jpeg, gif, bmp, tiff, webp),
converts each to text art with the profile's charmap and grid size, writes
every requested format (txt, ans) and a manifest file.

Output filenames are content-addressed: <key>.<cols>x<rows>.<hash>.ext`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutDir, "out", "o", "./textart_out", "output directory")
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "terminal", "conversion profile")
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "parallel workers (0 = NumCPU)")
	buildCmd.Flags().IntVar(&buildCols, "cols", 0, "grid width in cells (overrides profile)")
	buildCmd.Flags().IntVar(&buildRows, "rows", 0, "grid height in cells (overrides profile)")
	buildCmd.Flags().StringVarP(&buildCharMap, "charmap", "c", "", "charmap preset (overrides profile)")
	buildCmd.Flags().StringVar(&buildChars, "chars", "", "custom ramp, sparse to dense (overrides --charmap)")
	buildCmd.Flags().StringSliceVar(&buildFormats, "formats", nil, "output formats (overrides profile)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	inputDir := args[0]
	start := time.Now()

	absInput, err := filepath.Abs(inputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(buildOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	// Load profile; flags win.
	prof := profile.Get(buildProfile)
	if cmd.Flags().Changed("cols") || cmd.Flags().Changed("rows") {
		prof.Cols, prof.Rows = buildCols, buildRows
	}
	if buildCharMap != "" {
		prof.CharMap = buildCharMap
	}
	if buildFormats != nil {
		prof.Formats = buildFormats
	}
	cm, err := resolveCharMap(prof.CharMap, buildChars)
	if err != nil {
		return err
	}

	logVerbose("input:   %s", absInput)
	logVerbose("output:  %s", absOutput)
	logVerbose("profile: %s (grid=%dx%d, charmap=%s, formats=%v)",
		prof.Name, prof.Cols, prof.Rows, prof.CharMap, prof.Formats)

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  absInput,
		OutputDir: absOutput,
		Profile:   prof,
		CharMap:   cm,
		Workers:   buildWorkers,
		Verbose:   verbose,
	})

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOutput, manifest.FileName)
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBuildReport(m, time.Since(start))
	return nil
}

func printBuildReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════╗")
	fmt.Println("║             textart build complete               ║")
	fmt.Println("╚══════════════════════════════════════════════════╝")
	fmt.Println()

	stats := m.Stats
	fmt.Printf("  Assets:      %d\n", stats.TotalAssets)
	fmt.Printf("  Outputs:     %d\n", stats.TotalOutputs)
	fmt.Printf("  Charmap:     %s\n", m.CharMap)
	fmt.Printf("  Cells:       %d\n", stats.TotalCells)
	fmt.Printf("  Input size:  %s\n", formatBytes(stats.TotalInputBytes))
	fmt.Printf("  Output size: %s\n", formatBytes(stats.TotalOutputBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:     %d\n", m.BuildInfo.Workers)
	}
	fmt.Println()

	// Top 10 largest grids.
	if len(m.Assets) > 0 {
		type assetGrid struct {
			key        string
			cells      int
			cols, rows int
		}
		var items []assetGrid
		for key, a := range m.Assets {
			items = append(items, assetGrid{key, a.Cols * a.Rows, a.Cols, a.Rows})
		}
		sort.Slice(items, func(i, j int) bool {
			if items[i].cells != items[j].cells {
				return items[i].cells > items[j].cells
			}
			return items[i].key < items[j].key
		})
		n := min(len(items), 10)
		fmt.Printf("  Top %d largest grids:\n", n)
		for _, it := range items[:n] {
			fmt.Printf("    %-40s %4d x %-4d\n", truncKey(it.key, 40), it.cols, it.rows)
		}
		fmt.Println()
	}

	fmt.Printf("  Formats:     %s\n", strings.Join(detectOutputFormats(m), ", "))
	fmt.Println()

	data, _ := json.Marshal(m)
	fmt.Printf("  Manifest:    %s (%s)\n", manifest.FileName, formatBytes(int64(len(data))))
	fmt.Println()
}

func detectOutputFormats(m *manifest.Manifest) []string {
	set := map[string]bool{}
	for _, a := range m.Assets {
		for _, o := range a.Outputs {
			set[o.Format] = true
		}
	}
	var out []string
	for _, f := range []string{"txt", "ans"} {
		if set[f] {
			out = append(out, f)
		}
	}
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

func truncKey(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max+3:]
}
