package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"langcolor/internal/linguist"
	"langcolor/internal/palette"
	"langcolor/internal/render"
	"langcolor/pkg/logging"
)

func newForCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "for <language>...",
		Short: "Query GitHub Linguist's language colors",
		Long: `Looks up languages by name, alias, or file extension and prints each
match's display color as an RGB hex triplet and the nearest xterm-256
palette index. Matching is case-insensitive; multi-word queries match
any word.

Examples:
  langcolor for rust
  langcolor for objective-c
  langcolor for .tsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := linguist.Load()
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			matches := table.Query(query)
			if len(matches) == 0 {
				return &linguist.NotFoundError{Query: query}
			}

			out := make([]render.Match, 0, len(matches))
			for _, lang := range matches {
				out = append(out, render.Match{
					Name:  lang.Name,
					Color: lang.Color,
					Index: palette.NearestIn(lang.Color, colorSpace),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), render.FormatMatches(renderer, out))

			if copyToClipboard {
				hex := out[0].Color.Hex()
				if err := clipboard.WriteAll(hex); err != nil {
					logging.Warn("Clipboard", "Could not copy %s to clipboard: %v", hex, err)
				} else {
					logging.Debug("Clipboard", "Copied %s to clipboard", hex)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false,
		"copy the first match's hex value to the system clipboard")

	return cmd
}
