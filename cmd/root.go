package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "textart",
	Short: "Turn images into text art for terminals",
	Long: `textart renders images as grids of text glyphs: ASCII ramps,
Braille dots, Unicode sextant mosaics or teletext mosaics, with optional
24-bit color.

Convert a single image to stdout with "render", or a whole directory with
"build", which writes content-addressed files and a manifest.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"textart %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[textart] "+format+"\n", args...)
	}
}
