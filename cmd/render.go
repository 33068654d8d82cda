package cmd

import (
	"fmt"

	"github.com/AnyUserName/textart-cli/internal/art"
	"github.com/AnyUserName/textart-cli/internal/output"
	"github.com/AnyUserName/textart-cli/internal/resize"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	renderCols      int
	renderRows      int
	renderCharMap   string
	renderChars     string
	renderColor     bool
	renderNoNewline bool
)

var renderCmd = &cobra.Command{
	Use:   "render <image>",
	Short: "Convert one image and print it",
	Long: `Decodes an image (png, jpg, gif, bmp, tiff, webp), converts it to a
grid of glyphs and writes it to stdout.

Give --cols or --rows (or both); a missing one follows the image's
aspect ratio, assuming cells twice as tall as they are wide.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderCols, "cols", "W", 80, "grid width in cells (0 = from rows)")
	renderCmd.Flags().IntVarP(&renderRows, "rows", "H", 0, "grid height in cells (0 = from cols)")
	renderCmd.Flags().StringVarP(&renderCharMap, "charmap", "c", "chars1", "charmap preset (see textart charmaps)")
	renderCmd.Flags().StringVar(&renderChars, "chars", "", "custom ramp, sparse to dense (overrides --charmap)")
	renderCmd.Flags().BoolVar(&renderColor, "color", false, "24-bit color output")
	renderCmd.Flags().BoolVar(&renderNoNewline, "no-newlines", false, "do not break lines between rows")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cm, err := resolveCharMap(renderCharMap, renderChars)
	if err != nil {
		return err
	}

	img, err := imaging.Open(args[0], imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	b := img.Bounds()
	target := resize.Fit(b.Dx(), b.Dy(), renderCols, renderRows)
	logVerbose("source:  %dx%d", b.Dx(), b.Dy())
	logVerbose("grid:    %v cells, %v blocks", target, cm.Subpixels())

	frame, err := art.Convert(img, target, cm, !renderNoNewline)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	var w output.Writer = &output.TextWriter{}
	if renderColor {
		w = &output.ANSIWriter{}
	}
	data, err := w.Encode(frame)
	if err != nil {
		return fmt.Errorf("encode %s: %w", w.Format(), err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
