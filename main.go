package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Flag values for the root (interactive) command.
var (
	flagValue        int
	flagColumns      int
	flagShape        string
	flagScheme       string
	flagPalette      string
	flagScale        float64
	flagHideInactive bool
	flagShowEmpty    bool
	flagNoAnimation  bool
	flagNoGestures   bool
)

var rootCmd = &cobra.Command{
	Use:   "soroban",
	Short: "Soroban is an interactive Japanese abacus",
	Long: `Soroban renders a Japanese abacus in the terminal. Click or drag
beads with the mouse, or type digits to set columns directly. The same
renderer exports PNG and SVG images and generates flashcard batches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFromFlags(cmd)
		p := tea.NewProgram(newModel(flagValue, opts),
			tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := p.Run()
		return err
	},
}

// optionsFromFlags layers the command line over the user's rc file. Only
// flags the user actually set override the rc file, so the two compose.
func optionsFromFlags(cmd *cobra.Command) Options {
	opts := loadUserOptions()
	if cmd.Flags().Changed("columns") {
		opts.Columns = flagColumns
	}
	if cmd.Flags().Changed("shape") {
		opts.Shape = ParseBeadShape(flagShape)
	}
	if cmd.Flags().Changed("scheme") {
		opts.Scheme = ParseColorScheme(flagScheme)
	}
	if cmd.Flags().Changed("palette") {
		opts.Palette = ParseColorPalette(flagPalette)
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = flagScale
	}
	if cmd.Flags().Changed("hide-inactive") {
		opts.HideInactive = flagHideInactive
	}
	if cmd.Flags().Changed("show-empty") {
		opts.ShowEmpty = flagShowEmpty
	}
	if flagNoAnimation {
		opts.Animate = false
	}
	if flagNoGestures {
		opts.Gestures = false
	}
	return opts.Normalize()
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagColumns, "columns", 0, "fixed column count (0 = fit the value)")
	cmd.Flags().StringVar(&flagShape, "shape", "diamond", "bead shape: diamond, circle, square")
	cmd.Flags().StringVar(&flagScheme, "scheme", "monochrome", "color scheme: monochrome, place-value, heaven-earth, alternating")
	cmd.Flags().StringVar(&flagPalette, "palette", "default", "color palette: default, colorblind, mnemonic, grayscale, nature")
	cmd.Flags().Float64Var(&flagScale, "scale", defaultScaleFactor, "geometry scale factor")
	cmd.Flags().BoolVar(&flagHideInactive, "hide-inactive", false, "draw only engaged beads")
	cmd.Flags().BoolVar(&flagShowEmpty, "show-empty", false, "draw leading zero columns")
}

func init() {
	rootCmd.Flags().IntVar(&flagValue, "value", 0, "starting value")
	rootCmd.Flags().BoolVar(&flagNoAnimation, "no-animation", false, "disable bead movement animation")
	rootCmd.Flags().BoolVar(&flagNoGestures, "no-gestures", false, "disable drag gestures (clicks only)")
	addRenderFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(cardsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
