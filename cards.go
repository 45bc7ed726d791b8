package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// parseRange expands a range spec into numbers. Accepted forms: "0-10"
// (inclusive, honoring step), a comma list "1,2,5,10" whose entries may
// themselves be ranges, or a single number. Lists ignore step for bare
// entries, matching the card templates' CLI.
func parseRange(spec string, step int) ([]int, error) {
	if step < 1 {
		step = 1
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty range")
	}

	var numbers []int
	appendRange := func(part string) error {
		start, end, ok := strings.Cut(part, "-")
		if !ok {
			n, err := strconv.Atoi(part)
			if err != nil {
				return fmt.Errorf("bad range entry %q", part)
			}
			numbers = append(numbers, n)
			return nil
		}
		lo, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return fmt.Errorf("bad range start %q", start)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return fmt.Errorf("bad range end %q", end)
		}
		for n := lo; n <= hi; n += step {
			numbers = append(numbers, n)
		}
		return nil
	}

	for _, part := range strings.Split(spec, ",") {
		if err := appendRange(strings.TrimSpace(part)); err != nil {
			return nil, err
		}
	}
	return numbers, nil
}

// resolveNumbers produces the final card order for a run: explicit numbers
// win over the range spec, negatives are dropped at the fail-soft boundary,
// and a seeded shuffle keeps batches reproducible.
func (run *CardRun) resolveNumbers() ([]int, error) {
	numbers := run.Numbers
	if len(numbers) == 0 {
		parsed, err := parseRange(run.Range, run.Step)
		if err != nil {
			return nil, err
		}
		numbers = parsed
	}

	kept := numbers[:0:0]
	for _, n := range numbers {
		if n >= 0 {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no numbers to generate")
	}

	if run.Shuffle {
		shuffled := make([]int, len(kept))
		copy(shuffled, kept)
		rng := rand.New(rand.NewSource(run.Seed))
		if !run.HasSeed {
			rng = rand.New(rand.NewSource(rand.Int63()))
		}
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		kept = shuffled
	}
	return kept, nil
}

// cardPixels converts the card size to pixels for the run's format. PNG
// honors DPI; SVG uses CSS reference pixels.
func (run *CardRun) cardPixels() (int, int) {
	dpi := float64(run.DPI)
	if run.Format == "svg" {
		dpi = 96
	}
	if dpi <= 0 {
		dpi = 300
	}
	return int(run.CardWidth * dpi), int(run.CardHeight * dpi)
}

// Generate writes one front (bead side) and one back (numeral side) per
// number. With Separate set the files land in fronts/ and backs/
// subdirectories; otherwise they share OutDir with _front/_back suffixes.
// Returns the paths written, fronts and backs interleaved.
func (run *CardRun) Generate() ([]string, error) {
	if run.Format != "png" && run.Format != "svg" {
		return nil, fmt.Errorf("unsupported card format %q", run.Format)
	}

	numbers, err := run.resolveNumbers()
	if err != nil {
		return nil, err
	}

	frontsDir := run.OutDir
	backsDir := run.OutDir
	if run.Separate {
		frontsDir = filepath.Join(run.OutDir, "fronts")
		backsDir = filepath.Join(run.OutDir, "backs")
	}
	for _, dir := range []string{frontsDir, backsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	widthPx, heightPx := run.cardPixels()
	var written []string
	for i, n := range numbers {
		var frontPath, backPath string
		if run.Separate {
			frontPath = filepath.Join(frontsDir, fmt.Sprintf("card_%03d.%s", i, run.Format))
			backPath = filepath.Join(backsDir, fmt.Sprintf("card_%03d.%s", i, run.Format))
		} else {
			frontPath = filepath.Join(run.OutDir, fmt.Sprintf("card_%03d_front.%s", i, run.Format))
			backPath = filepath.Join(run.OutDir, fmt.Sprintf("card_%03d_back.%s", i, run.Format))
		}

		if err := run.writeFront(frontPath, n, widthPx, heightPx); err != nil {
			return written, fmt.Errorf("card %03d front (%d): %w", i, n, err)
		}
		written = append(written, frontPath)

		if err := run.writeBack(backPath, n, widthPx, heightPx); err != nil {
			return written, fmt.Errorf("card %03d back (%d): %w", i, n, err)
		}
		written = append(written, backPath)
	}
	return written, nil
}

func (run *CardRun) writeFront(path string, value, widthPx, heightPx int) error {
	if run.Format == "svg" {
		return ExportAbacusSVG(path, value, run.Opts)
	}
	dc := RenderCardFront(value, run.Opts, widthPx, heightPx)
	return dc.SavePNG(path)
}

func (run *CardRun) writeBack(path string, value, widthPx, heightPx int) error {
	if run.Format == "svg" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		return writeNumeralSVG(file, value, run.Opts, float64(widthPx), float64(heightPx))
	}
	dc, err := RenderCardBack(value, run.Opts, widthPx, heightPx)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
