package cmd

import (
	"errors"
	"fmt"

	"github.com/AnyUserName/textart-cli/internal/charmap"
	"github.com/spf13/cobra"
)

var charmapsCmd = &cobra.Command{
	Use:   "charmaps",
	Short: "List the built-in charmaps",
	Args:  cobra.NoArgs,
	RunE:  runCharmaps,
}

func init() {
	rootCmd.AddCommand(charmapsCmd)
}

func runCharmaps(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range charmap.Names() {
		cm, err := charmap.Get(name)
		if err != nil {
			return err
		}
		sample := ""
		if l, ok := cm.(charmap.Lookup); ok {
			sample = string(l)
		}
		fmt.Fprintf(out, "  %-11s %-4s %s\n", name, cm.Subpixels(), sample)
	}
	return nil
}

// resolveCharMap picks a custom ramp over a preset name.
func resolveCharMap(name, ramp string) (charmap.CharMap, error) {
	if ramp != "" {
		return charmap.Custom(ramp)
	}
	if name == "" {
		return nil, errors.New("no charmap given")
	}
	return charmap.Get(name)
}
