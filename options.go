package main

// Options configures a widget or a card rendering. Invalid values never
// error; Normalize folds them back to documented defaults because a display
// widget should degrade, not crash.
type Options struct {
	Columns         int // 0 means auto: max(1, digits of the value)
	Shape           BeadShape
	Scheme          ColorScheme
	Palette         ColorPalette
	ColoredNumerals bool
	HideInactive    bool
	ShowEmpty       bool
	Scale           float64
	Animate         bool
	Gestures        bool
	Transparent     bool
}

func DefaultOptions() Options {
	return Options{
		Shape:    ShapeDiamond,
		Scheme:   SchemeMonochrome,
		Palette:  PaletteDefault,
		Scale:    defaultScaleFactor,
		Animate:  true,
		Gestures: true,
	}
}

func (o Options) Normalize() Options {
	if o.Columns < 0 {
		o.Columns = 0
	}
	if o.Scale < minScaleFactor || o.Scale > maxScaleFactor {
		o.Scale = defaultScaleFactor
	}
	if o.Shape < ShapeDiamond || o.Shape > ShapeSquare {
		o.Shape = ShapeDiamond
	}
	if o.Scheme < SchemeMonochrome || o.Scheme > SchemeAlternating {
		o.Scheme = SchemeMonochrome
	}
	if o.Palette < PaletteDefault || o.Palette > PaletteNature {
		o.Palette = PaletteDefault
	}
	return o
}

// columnCount resolves the visible column count for a value under these
// options. ShowEmpty widens an auto layout by nothing here; it only keeps
// leading zero columns visible when Columns is fixed, so auto stays at the
// digit count.
func (o Options) columnCount(value int) int {
	if o.Columns > 0 {
		return o.Columns
	}
	if value < 1 {
		return 1
	}
	return digitCount(value)
}
