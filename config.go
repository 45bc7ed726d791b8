package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// loadUserOptions reads ~/.sorobanrc (key = value lines, # comments) on top
// of the built-in defaults. Anything unreadable or unrecognized is skipped;
// the widget always starts with a usable configuration.
func loadUserOptions() Options {
	opts := DefaultOptions()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return opts
	}

	file, err := os.Open(filepath.Join(homeDir, ".sorobanrc"))
	if err != nil {
		return opts
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "shape", "bead_shape":
			opts.Shape = ParseBeadShape(value)
		case "scheme", "color_scheme":
			opts.Scheme = ParseColorScheme(value)
		case "palette", "color_palette":
			opts.Palette = ParseColorPalette(value)
		case "scale", "scale_factor":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				opts.Scale = f
			}
		case "columns":
			if n, err := strconv.Atoi(value); err == nil {
				opts.Columns = n
			}
		case "hide_inactive", "hide_inactive_beads":
			opts.HideInactive = strings.ToLower(value) == "true"
		case "show_empty", "show_empty_columns":
			opts.ShowEmpty = strings.ToLower(value) == "true"
		case "animation", "animate":
			opts.Animate = strings.ToLower(value) != "false"
		case "gestures":
			opts.Gestures = strings.ToLower(value) != "false"
		}
	}

	return opts.Normalize()
}

// CardRun is one batch card-generation job.
type CardRun struct {
	Opts       Options
	Range      string
	Step       int
	Numbers    []int
	Shuffle    bool
	Seed       int64
	HasSeed    bool
	Format     string // "png" or "svg"
	OutDir     string
	DPI        int
	Separate   bool
	CardWidth  float64 // inches
	CardHeight float64 // inches
}

func defaultCardRun() CardRun {
	return CardRun{
		Opts:       DefaultOptions(),
		Range:      "0-9",
		Step:       1,
		Format:     "png",
		OutDir:     filepath.Join("out", "cards"),
		DPI:        300,
		Separate:   true,
		CardWidth:  3.5,
		CardHeight: 2.5,
	}
}

// applyCardFile merges a YAML or JSON config file into the run. A missing
// file is fine; only keys present in the file override.
func applyCardFile(run *CardRun, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if v.IsSet("range") {
		run.Range = v.GetString("range")
	}
	if v.IsSet("step") {
		run.Step = v.GetInt("step")
	}
	if v.IsSet("numbers") {
		run.Numbers = v.GetIntSlice("numbers")
	}
	if v.IsSet("shuffle") {
		run.Shuffle = v.GetBool("shuffle")
	}
	if v.IsSet("seed") {
		run.Seed = v.GetInt64("seed")
		run.HasSeed = true
	}
	if v.IsSet("format") {
		run.Format = v.GetString("format")
	}
	if v.IsSet("output") {
		run.OutDir = v.GetString("output")
	}
	if v.IsSet("dpi") {
		run.DPI = v.GetInt("dpi")
	}
	if v.IsSet("separate") {
		run.Separate = v.GetBool("separate")
	}
	if v.IsSet("card_width") {
		run.CardWidth = v.GetFloat64("card_width")
	}
	if v.IsSet("card_height") {
		run.CardHeight = v.GetFloat64("card_height")
	}
	if v.IsSet("columns") {
		run.Opts.Columns = v.GetInt("columns")
	}
	if v.IsSet("bead_shape") {
		run.Opts.Shape = ParseBeadShape(v.GetString("bead_shape"))
	}
	if v.IsSet("color_scheme") {
		run.Opts.Scheme = ParseColorScheme(v.GetString("color_scheme"))
	}
	if v.IsSet("color_palette") {
		run.Opts.Palette = ParseColorPalette(v.GetString("color_palette"))
	}
	if v.IsSet("colored_numerals") {
		run.Opts.ColoredNumerals = v.GetBool("colored_numerals")
	}
	if v.IsSet("hide_inactive_beads") {
		run.Opts.HideInactive = v.GetBool("hide_inactive_beads")
	}
	if v.IsSet("show_empty_columns") {
		run.Opts.ShowEmpty = v.GetBool("show_empty_columns")
	}
	if v.IsSet("scale_factor") {
		run.Opts.Scale = v.GetFloat64("scale_factor")
	}
	if v.IsSet("transparent") {
		run.Opts.Transparent = v.GetBool("transparent")
	}

	run.Opts = run.Opts.Normalize()
	return nil
}
