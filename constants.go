package main

type BeadShape int

const (
	ShapeDiamond BeadShape = iota
	ShapeCircle
	ShapeSquare
)

type ColorScheme int

const (
	SchemeMonochrome ColorScheme = iota
	SchemePlaceValue
	SchemeHeavenEarth
	SchemeAlternating
)

type ColorPalette int

const (
	PaletteDefault ColorPalette = iota
	PaletteColorblind
	PaletteMnemonic
	PaletteGrayscale
	PaletteNature
)

type BeadKind int

const (
	HeavenBead BeadKind = iota
	EarthBead
)

// Geometry base table, shared with the offline card templates. The card
// renderers and the interactive widget must agree on these numbers
// bead-for-bead, so any change here is a new geometryVersion.
const geometryVersion = 2

const (
	baseRodSpacing      = 30.0
	baseBeadSize        = 20.0
	baseRodThickness    = 3.0
	baseBarThickness    = 3.0
	baseHeavenEarthGap  = 60.0
	baseActiveGap       = 2.0
	baseInactiveGap     = 14.0
	baseAdjacentSpacing = 2.0

	// Diamonds are wider than tall; circles and squares are not.
	diamondWidthFactor = 1.6
)

const (
	earthBeadsPerColumn = 4

	defaultScaleFactor = 0.9
	minScaleFactor     = 0.1
	maxScaleFactor     = 2.0

	gestureThresholdRatio = 0.3
)

func ParseBeadShape(s string) BeadShape {
	switch s {
	case "diamond":
		return ShapeDiamond
	case "circle":
		return ShapeCircle
	case "square":
		return ShapeSquare
	}
	return ShapeDiamond
}

func (s BeadShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	}
	return "diamond"
}

func ParseColorScheme(s string) ColorScheme {
	switch s {
	case "monochrome":
		return SchemeMonochrome
	case "place-value":
		return SchemePlaceValue
	case "heaven-earth":
		return SchemeHeavenEarth
	case "alternating":
		return SchemeAlternating
	}
	return SchemeMonochrome
}

func (s ColorScheme) String() string {
	switch s {
	case SchemePlaceValue:
		return "place-value"
	case SchemeHeavenEarth:
		return "heaven-earth"
	case SchemeAlternating:
		return "alternating"
	}
	return "monochrome"
}

func ParseColorPalette(s string) ColorPalette {
	switch s {
	case "default":
		return PaletteDefault
	case "colorblind":
		return PaletteColorblind
	case "mnemonic":
		return PaletteMnemonic
	case "grayscale":
		return PaletteGrayscale
	case "nature":
		return PaletteNature
	}
	return PaletteDefault
}

func (p ColorPalette) String() string {
	switch p {
	case PaletteColorblind:
		return "colorblind"
	case PaletteMnemonic:
		return "mnemonic"
	case PaletteGrayscale:
		return "grayscale"
	case PaletteNature:
		return "nature"
	}
	return "default"
}

// Each palette is a 5-color ramp indexed by decimal place mod 5 (ones, tens,
// hundreds, thousands, ten-thousands, then repeating).
var paletteRamps = map[ColorPalette][5]string{
	PaletteDefault:    {"#e74c3c", "#3498db", "#2ecc71", "#f39c12", "#9b59b6"},
	PaletteColorblind: {"#d55e00", "#0072b2", "#009e73", "#e69f00", "#cc79a7"},
	PaletteMnemonic:   {"#cc0000", "#0066cc", "#00a652", "#ff8800", "#7b2d8e"},
	PaletteGrayscale:  {"#111111", "#444444", "#6e6e6e", "#999999", "#c4c4c4"},
	PaletteNature:     {"#b23a48", "#2e6f95", "#44823e", "#c98a2b", "#5d576b"},
}

const (
	colorMonochrome = "#1a1a1a"
	colorHeaven     = "#c0392b"
	colorEarth      = "#2c3e50"
	colorFrame      = "#4a3728"
	colorInactive   = "#b8b0a4"
)

// RampColor returns the palette entry for one decimal place of a ramp scheme.
func RampColor(p ColorPalette, placeFromRight int) string {
	ramp, ok := paletteRamps[p]
	if !ok {
		ramp = paletteRamps[PaletteDefault]
	}
	return ramp[placeFromRight%5]
}

// beadFill is BeadColor plus the engagement dimming rule: under the
// monochrome scheme a disengaged bead renders in a muted tone so the engaged
// stack reads at a glance. Ramp schemes keep full color either way.
func beadFill(opts Options, d BeadDescriptor, placeFromRight int) string {
	if !d.Engaged && opts.Scheme == SchemeMonochrome {
		return colorInactive
	}
	return BeadColor(opts.Scheme, opts.Palette, d.Kind, placeFromRight)
}

// BeadColor resolves the fill color for a bead under the given scheme.
// placeFromRight is the column's decimal place, 0 for the ones column.
func BeadColor(scheme ColorScheme, palette ColorPalette, kind BeadKind, placeFromRight int) string {
	switch scheme {
	case SchemePlaceValue:
		return RampColor(palette, placeFromRight)
	case SchemeHeavenEarth:
		if kind == HeavenBead {
			return colorHeaven
		}
		return colorEarth
	case SchemeAlternating:
		if placeFromRight%2 == 0 {
			return RampColor(palette, 0)
		}
		return RampColor(palette, 1)
	}
	return colorMonochrome
}
