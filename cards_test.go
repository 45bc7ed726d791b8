package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		step    int
		want    []int
		wantErr bool
	}{
		{name: "simple range", spec: "0-4", step: 1, want: []int{0, 1, 2, 3, 4}},
		{name: "range with step", spec: "0-10", step: 5, want: []int{0, 5, 10}},
		{name: "step overshoot keeps within bound", spec: "0-9", step: 4, want: []int{0, 4, 8}},
		{name: "comma list", spec: "1,2,5", step: 1, want: []int{1, 2, 5}},
		{name: "mixed list and range", spec: "1,10-12,50", step: 1, want: []int{1, 10, 11, 12, 50}},
		{name: "single number", spec: "7", step: 1, want: []int{7}},
		{name: "whitespace tolerated", spec: " 3 , 5 - 7 ", step: 1, want: []int{3, 5, 6, 7}},
		{name: "zero step treated as one", spec: "0-2", step: 0, want: []int{0, 1, 2}},
		{name: "empty spec", spec: "", step: 1, wantErr: true},
		{name: "garbage entry", spec: "1,x,3", step: 1, wantErr: true},
		{name: "garbage range end", spec: "1-x", step: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRange(tt.spec, tt.step)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNumbers(t *testing.T) {
	run := defaultCardRun()
	run.Range = "0-3"
	got, err := run.resolveNumbers()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	// Explicit numbers override the range; negatives are dropped.
	run.Numbers = []int{9, -1, 4}
	got, err = run.resolveNumbers()
	require.NoError(t, err)
	assert.Equal(t, []int{9, 4}, got)

	// Nothing left after filtering is an error, not an empty batch.
	run.Numbers = []int{-3, -7}
	_, err = run.resolveNumbers()
	assert.Error(t, err)
}

func TestResolveNumbersSeededShuffle(t *testing.T) {
	base := defaultCardRun()
	base.Range = "0-19"
	base.Shuffle = true
	base.Seed = 42
	base.HasSeed = true

	first, err := base.resolveNumbers()
	require.NoError(t, err)
	second, err := base.resolveNumbers()
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed, same order")
	assert.ElementsMatch(t, first, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19})

	other := base
	other.Seed = 43
	third, err := other.resolveNumbers()
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "different seed shuffles differently")
}

func TestCardPixels(t *testing.T) {
	run := defaultCardRun() // 3.5 x 2.5 inches
	w, h := run.cardPixels()
	assert.Equal(t, 1050, w)
	assert.Equal(t, 750, h)

	run.Format = "svg"
	w, h = run.cardPixels()
	assert.Equal(t, 336, w, "svg renders at css reference dpi")
	assert.Equal(t, 240, h)
}

func TestGenerateSeparateDirs(t *testing.T) {
	run := defaultCardRun()
	run.Range = "0-2"
	run.Format = "svg"
	run.OutDir = t.TempDir()

	written, err := run.Generate()
	require.NoError(t, err)
	require.Len(t, written, 6)

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("card_%03d.svg", i)
		assert.FileExists(t, filepath.Join(run.OutDir, "fronts", name))
		assert.FileExists(t, filepath.Join(run.OutDir, "backs", name))
	}
}

func TestGenerateFlatDir(t *testing.T) {
	run := defaultCardRun()
	run.Numbers = []int{5}
	run.Format = "svg"
	run.Separate = false
	run.OutDir = t.TempDir()

	written, err := run.Generate()
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.FileExists(t, filepath.Join(run.OutDir, "card_000_front.svg"))
	assert.FileExists(t, filepath.Join(run.OutDir, "card_000_back.svg"))

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `data-value="5"`)
}

func TestGeneratePNG(t *testing.T) {
	run := defaultCardRun()
	run.Numbers = []int{7}
	run.DPI = 50 // keep the test image small
	run.Separate = false
	run.OutDir = t.TempDir()

	written, err := run.Generate()
	require.NoError(t, err)
	require.Len(t, written, 2)
	for _, path := range written {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestGenerateRejectsBadFormat(t *testing.T) {
	run := defaultCardRun()
	run.Format = "pdf"
	_, err := run.Generate()
	assert.Error(t, err)
}
