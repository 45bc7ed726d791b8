package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// renderStates decomposes a value under the given options, padded to the
// configured column count.
func renderStates(value int, opts Options) []ColumnState {
	if value < 0 {
		value = 0
	}
	return padColumns(Decompose(value), opts.columnCount(value))
}

// visibleStart is the first column actually drawn. Leading all-zero padding
// columns are skipped unless the options ask for them.
func visibleStart(states []ColumnState, opts Options) int {
	if opts.ShowEmpty {
		return 0
	}
	for i, c := range states {
		if c.Digit() != 0 {
			return i
		}
	}
	return len(states) - 1
}

// drawAbacus paints rods, bar, and beads onto the context with the abacus
// origin at (ox, oy). Beads land exactly where the layout engine says; the
// context transform is the only scaling applied on top.
func drawAbacus(dc *gg.Context, states []ColumnState, g Geometry, opts Options, ox, oy float64) {
	cols := len(states)
	width := g.CanvasWidth(cols)
	height := g.CanvasHeight()

	dc.SetHexColor(colorFrame)
	for col := range states {
		cx := ox + g.RodCenterX(col)
		dc.DrawRectangle(cx-g.RodThickness/2, oy, g.RodThickness, height)
		dc.Fill()
	}
	dc.DrawRectangle(ox, oy+g.BarTop(), width, g.BarThickness)
	dc.Fill()

	descs, frames := g.Frames(states, opts.Shape)
	for i, d := range descs {
		if opts.HideInactive && !d.Engaged {
			continue
		}
		place := cols - 1 - d.Column
		dc.SetHexColor(beadFill(opts, d, place))
		drawBeadShape(dc, frames[i], opts.Shape, ox, oy)
	}
}

func drawBeadShape(dc *gg.Context, f BeadFrame, shape BeadShape, ox, oy float64) {
	cx := ox + f.CX
	cy := oy + f.CY
	switch shape {
	case ShapeCircle:
		dc.DrawCircle(cx, cy, f.H/2)
	case ShapeSquare:
		dc.DrawRoundedRectangle(cx-f.W/2, cy-f.H/2, f.W, f.H, f.H*0.15)
	default:
		dc.MoveTo(cx, cy-f.H/2)
		dc.LineTo(cx+f.W/2, cy)
		dc.LineTo(cx, cy+f.H/2)
		dc.LineTo(cx-f.W/2, cy)
		dc.ClosePath()
	}
	dc.Fill()
}

func monoFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func newCardContext(widthPx, heightPx int, transparent bool) *gg.Context {
	dc := gg.NewContext(widthPx, heightPx)
	if !transparent {
		dc.SetColor(color.White)
		dc.Clear()
	}
	return dc
}

// RenderCardFront draws the bead side of a flashcard: the abacus scaled to
// fit the card with a margin, centered.
func RenderCardFront(value int, opts Options, widthPx, heightPx int) *gg.Context {
	opts = opts.Normalize()
	states := renderStates(value, opts)
	states = states[visibleStart(states, opts):]
	g := NewGeometry(opts.Scale)

	dc := newCardContext(widthPx, heightPx, opts.Transparent)

	width := g.CanvasWidth(len(states))
	height := g.CanvasHeight()
	availW := float64(widthPx) * 0.9
	availH := float64(heightPx) * 0.9
	fit := availW / width
	if availH/height < fit {
		fit = availH / height
	}

	dc.Push()
	dc.Translate((float64(widthPx)-width*fit)/2, (float64(heightPx)-height*fit)/2)
	dc.Scale(fit, fit)
	drawAbacus(dc, states, g, opts, 0, 0)
	dc.Pop()
	return dc
}

// RenderCardBack draws the numeral side. With colored numerals each digit
// takes its place-value ramp color, matching the bead scheme on the front.
func RenderCardBack(value int, opts Options, widthPx, heightPx int) (*gg.Context, error) {
	opts = opts.Normalize()
	dc := newCardContext(widthPx, heightPx, opts.Transparent)

	text := strconv.Itoa(value)
	fontSize := float64(heightPx) * 0.4
	face, err := monoFace(fontSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	totalW, _ := dc.MeasureString(text)
	x := (float64(widthPx) - totalW) / 2
	y := float64(heightPx)/2 + fontSize*0.35

	if !opts.ColoredNumerals {
		dc.SetHexColor(colorMonochrome)
		dc.DrawString(text, x, y)
		return dc, nil
	}

	for i, r := range text {
		place := len(text) - 1 - i
		dc.SetHexColor(numeralColor(opts, place))
		s := string(r)
		dc.DrawString(s, x, y)
		w, _ := dc.MeasureString(s)
		x += w
	}
	return dc, nil
}

func numeralColor(opts Options, placeFromRight int) string {
	switch opts.Scheme {
	case SchemePlaceValue, SchemeAlternating:
		return BeadColor(opts.Scheme, opts.Palette, EarthBead, placeFromRight)
	case SchemeHeavenEarth:
		return colorEarth
	}
	return colorMonochrome
}

// ExportAbacusPNG writes a bare abacus image for the current value, sized to
// the layout's natural canvas plus a small margin.
func ExportAbacusPNG(filename string, value int, opts Options) error {
	opts = opts.Normalize()
	states := renderStates(value, opts)
	states = states[visibleStart(states, opts):]
	g := NewGeometry(opts.Scale)

	margin := g.RodSpacing / 2
	width := int(g.CanvasWidth(len(states)) + 2*margin)
	height := int(g.CanvasHeight() + 2*margin)

	dc := newCardContext(width, height, opts.Transparent)
	drawAbacus(dc, states, g, opts, margin, margin)
	return dc.SavePNG(filename)
}
