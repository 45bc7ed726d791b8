package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagCardsConfig      string
	flagCardsRange       string
	flagCardsStep        int
	flagCardsNumbers     []int
	flagCardsShuffle     bool
	flagCardsSeed        int64
	flagCardsFormat      string
	flagCardsOut         string
	flagCardsDPI         int
	flagCardsSeparate    bool
	flagCardsWidth       float64
	flagCardsHeight      float64
	flagCardsColored     bool
	flagCardsTransparent bool
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "Generate a batch of flashcards",
	Long: `Cards renders a front (beads) and back (numeral) image for every
number in the batch. Batches come from --range/--step or an explicit
--numbers list, optionally shuffled; a config file supplies the same keys
and flags override it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		run := defaultCardRun()
		run.Opts = loadUserOptions()
		if flagCardsConfig != "" {
			if err := applyCardFile(&run, flagCardsConfig); err != nil {
				return fmt.Errorf("read config %s: %w", flagCardsConfig, err)
			}
		}

		f := cmd.Flags()
		if f.Changed("range") {
			run.Range = flagCardsRange
		}
		if f.Changed("step") {
			run.Step = flagCardsStep
		}
		if f.Changed("numbers") {
			run.Numbers = flagCardsNumbers
		}
		if f.Changed("shuffle") {
			run.Shuffle = flagCardsShuffle
		}
		if f.Changed("seed") {
			run.Seed = flagCardsSeed
			run.HasSeed = true
		}
		if f.Changed("format") {
			run.Format = flagCardsFormat
		}
		if f.Changed("out") {
			run.OutDir = flagCardsOut
		}
		if f.Changed("dpi") {
			run.DPI = flagCardsDPI
		}
		if f.Changed("separate") {
			run.Separate = flagCardsSeparate
		}
		if f.Changed("card-width") {
			run.CardWidth = flagCardsWidth
		}
		if f.Changed("card-height") {
			run.CardHeight = flagCardsHeight
		}
		if f.Changed("columns") {
			run.Opts.Columns = flagColumns
		}
		if f.Changed("shape") {
			run.Opts.Shape = ParseBeadShape(flagShape)
		}
		if f.Changed("scheme") {
			run.Opts.Scheme = ParseColorScheme(flagScheme)
		}
		if f.Changed("palette") {
			run.Opts.Palette = ParseColorPalette(flagPalette)
		}
		if f.Changed("scale") {
			run.Opts.Scale = flagScale
		}
		if f.Changed("hide-inactive") {
			run.Opts.HideInactive = flagHideInactive
		}
		if f.Changed("show-empty") {
			run.Opts.ShowEmpty = flagShowEmpty
		}
		if f.Changed("colored-numerals") {
			run.Opts.ColoredNumerals = flagCardsColored
		}
		if f.Changed("transparent") {
			run.Opts.Transparent = flagCardsTransparent
		}
		run.Opts = run.Opts.Normalize()

		written, err := run.Generate()
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d files to %s\n", len(written), run.OutDir)
		return nil
	},
}

func init() {
	cardsCmd.Flags().StringVar(&flagCardsConfig, "config", "", "card batch config file (yaml or json)")
	cardsCmd.Flags().StringVar(&flagCardsRange, "range", "0-9", `number range, e.g. "0-99" or "1,2,5,10-20"`)
	cardsCmd.Flags().IntVar(&flagCardsStep, "step", 1, "step within ranges")
	cardsCmd.Flags().IntSliceVar(&flagCardsNumbers, "numbers", nil, "explicit number list (overrides --range)")
	cardsCmd.Flags().BoolVar(&flagCardsShuffle, "shuffle", false, "shuffle the batch order")
	cardsCmd.Flags().Int64Var(&flagCardsSeed, "seed", 0, "shuffle seed for reproducible batches")
	cardsCmd.Flags().StringVar(&flagCardsFormat, "format", "png", "output format: png or svg")
	cardsCmd.Flags().StringVarP(&flagCardsOut, "out", "o", "out/cards", "output directory")
	cardsCmd.Flags().IntVar(&flagCardsDPI, "dpi", 300, "render resolution for png output")
	cardsCmd.Flags().BoolVar(&flagCardsSeparate, "separate", true, "write fronts/ and backs/ subdirectories")
	cardsCmd.Flags().Float64Var(&flagCardsWidth, "card-width", 3.5, "card width in inches")
	cardsCmd.Flags().Float64Var(&flagCardsHeight, "card-height", 2.5, "card height in inches")
	cardsCmd.Flags().BoolVar(&flagCardsColored, "colored-numerals", false, "color card-back digits by place value")
	cardsCmd.Flags().BoolVar(&flagCardsTransparent, "transparent", false, "transparent background")
	addRenderFlags(cardsCmd)
}
