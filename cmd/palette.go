package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"langcolor/internal/render"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the xterm 256-color palette as a chart",
		Long: `Prints every entry of the xterm 256-color palette, grouped into the
16 system colors, the 6x6x6 color cube, and the grayscale ramp. Each
index is styled in its own color when the terminal supports it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), render.Chart(renderer))
			return nil
		},
	}
}
