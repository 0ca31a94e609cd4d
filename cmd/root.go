package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"langcolor/internal/config"
	"langcolor/internal/palette"
	"langcolor/internal/render"
	"langcolor/pkg/logging"
)

var (
	colorSpaceFlag string
	noColorFlag    bool
	verboseFlag    bool

	// Resolved once per invocation in setup.
	colorSpace palette.Space
	renderer   render.Renderer
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "langcolor",
	Short: "Look up language display colors and their nearest xterm-256 match",
	Long: `langcolor maps a programming-language name to its GitHub Linguist
display color and prints it as an RGB hex triplet together with the
nearest entry of the xterm 256-color palette. It is meant for shell
prompt themes and terminal tooling that want consistent per-language
coloring.`,
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. unknown languages, malformed colors)
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup initializes logging, loads the optional user config, and resolves
// the color space and renderer for this invocation. Flags win over config.
func setup(cmd *cobra.Command, args []string) error {
	level := logging.LevelWarn
	if verboseFlag {
		level = logging.LevelDebug
	}
	logging.Init(level, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	spaceName := cfg.ColorSpace
	if colorSpaceFlag != "" {
		spaceName = colorSpaceFlag
	}
	colorSpace, err = palette.ParseSpace(spaceName)
	if err != nil {
		return err
	}

	noColor := noColorFlag || cfg.Color == "never"
	renderer = render.NewRenderer(render.DetectProfile(noColor))

	return nil
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "langcolor version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&colorSpaceFlag, "color-space", "c", "",
		"color model for nearest-match distance: rgb, lab, luv, cie94, or ciede2000 (default rgb)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable styled output")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false,
		"enable debug logging")

	rootCmd.AddCommand(newForCmd())
	rootCmd.AddCommand(newXtermCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newMCPCmd())
}
