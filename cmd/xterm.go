package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"langcolor/internal/palette"
	"langcolor/internal/render"
)

func newXtermCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xterm <hex-color>...",
		Short: "Find nearest xterm colors for the colors given in hex notation",
		Long: `Converts arbitrary colors to their nearest xterm-256 palette index.
Colors are given in "#rrggbb", "rrggbb", or "#rgb" hex notation.

Example:
  langcolor xterm '#dea584' '#3572a5'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				rgb, err := palette.ParseHex(arg)
				if err != nil {
					return err
				}
				m := render.Match{
					Color: rgb,
					Index: palette.NearestIn(rgb, colorSpace),
				}
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatMatch(renderer, m))
			}
			return nil
		},
	}
}
