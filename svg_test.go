package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSVGString(t *testing.T, value int, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, value, opts))
	return buf.String()
}

func TestRenderSVGBeadIDs(t *testing.T) {
	out := renderSVGString(t, 42, DefaultOptions())

	// Two columns, one heaven and four earth beads each.
	for col := 0; col < 2; col++ {
		assert.Contains(t, out, fmt.Sprintf(`id="bead-c%d-h"`, col))
		for pos := 0; pos < 4; pos++ {
			assert.Contains(t, out, fmt.Sprintf(`id="bead-c%d-e%d"`, col, pos))
		}
	}
	assert.Contains(t, out, `id="rod-0"`)
	assert.Contains(t, out, `id="rod-1"`)
	assert.Contains(t, out, `id="bar"`)
	assert.Contains(t, out, `data-value="42"`)
}

func TestRenderSVGBeadLinks(t *testing.T) {
	out := renderSVGString(t, 42, DefaultOptions())
	assert.Contains(t, out, `xlink:href="soroban://bead/0/heaven/0"`)
	assert.Contains(t, out, `xlink:href="soroban://bead/1/earth/3"`)
}

func TestRenderSVGCropMarkers(t *testing.T) {
	out := renderSVGString(t, 0, DefaultOptions())
	assert.Contains(t, out, `id="crop-markers"`)
	for _, id := range []string{"crop-nw", "crop-ne", "crop-se", "crop-sw"} {
		assert.Contains(t, out, fmt.Sprintf(`id="%s"`, id))
	}
}

func TestRenderSVGHideInactive(t *testing.T) {
	opts := DefaultOptions()
	opts.HideInactive = true
	out := renderSVGString(t, 5, opts)

	assert.Contains(t, out, `id="bead-c0-h"`, "the engaged heaven bead is drawn")
	assert.NotContains(t, out, `id="bead-c0-e0"`, "disengaged beads are omitted")
}

func TestRenderSVGBackground(t *testing.T) {
	out := renderSVGString(t, 1, DefaultOptions())
	assert.Contains(t, out, `id="background"`)

	opts := DefaultOptions()
	opts.Transparent = true
	out = renderSVGString(t, 1, opts)
	assert.NotContains(t, out, `id="background"`)
}

func TestRenderSVGEngagementAttrs(t *testing.T) {
	out := renderSVGString(t, 3, DefaultOptions())
	assert.Contains(t, out, `data-engaged="true"`)
	assert.Contains(t, out, `data-engaged="false"`)
}

func TestWriteNumeralSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ColoredNumerals = true
	opts.Scheme = SchemePlaceValue
	require.NoError(t, writeNumeralSVG(&buf, 507, opts, 336, 240))
	out := buf.String()

	for place := 0; place < 3; place++ {
		assert.Contains(t, out, fmt.Sprintf(`id="digit-%d"`, place))
	}
	assert.Contains(t, out, RampColor(PaletteDefault, 0), "ones digit takes the ones ramp color")
	assert.Contains(t, out, RampColor(PaletteDefault, 2))
}
