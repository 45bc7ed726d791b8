package main

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo/float"
)

// beadID is the stable address of one bead in SVG output. Downstream tooling
// keys on these ids (and the bead links) when it rewrites the markup, so the
// format is load-bearing: bead-c<column>-h for heaven, bead-c<column>-e<pos>
// for earth.
func beadID(d BeadDescriptor) string {
	if d.Kind == HeavenBead {
		return fmt.Sprintf("bead-c%d-h", d.Column)
	}
	return fmt.Sprintf("bead-c%d-e%d", d.Column, d.Position)
}

func beadHref(d BeadDescriptor) string {
	if d.Kind == HeavenBead {
		return fmt.Sprintf("soroban://bead/%d/heaven/0", d.Column)
	}
	return fmt.Sprintf("soroban://bead/%d/earth/%d", d.Column, d.Position)
}

// RenderSVG writes the static (non-interactive) rendering of a value. Every
// bead is wrapped in an identifying link and the four corners carry
// crop-boundary markers, which is all the downstream post-processing needs;
// interpreting them is not this renderer's job.
func RenderSVG(w io.Writer, value int, opts Options) error {
	opts = opts.Normalize()
	states := renderStates(value, opts)
	states = states[visibleStart(states, opts):]
	g := NewGeometry(opts.Scale)

	margin := g.RodSpacing / 2
	width := g.CanvasWidth(len(states)) + 2*margin
	height := g.CanvasHeight() + 2*margin

	canvas := svg.New(w)
	canvas.Start(width, height)
	if !opts.Transparent {
		canvas.Rect(0, 0, width, height, `id="background"`, `fill="#ffffff"`)
	}

	drawCropMarkers(canvas, width, height, g)

	canvas.Group(`id="soroban"`, fmt.Sprintf(`data-value="%d"`, value))

	canvas.Group(`id="frame"`)
	for col := range states {
		cx := margin + g.RodCenterX(col)
		canvas.Rect(cx-g.RodThickness/2, margin, g.RodThickness, g.CanvasHeight(),
			fmt.Sprintf(`id="rod-%d"`, col), fmt.Sprintf(`fill="%s"`, colorFrame))
	}
	canvas.Rect(margin, margin+g.BarTop(), g.CanvasWidth(len(states)), g.BarThickness,
		`id="bar"`, fmt.Sprintf(`fill="%s"`, colorFrame))
	canvas.Gend()

	cols := len(states)
	descs, frames := g.Frames(states, opts.Shape)
	for i, d := range descs {
		if opts.HideInactive && !d.Engaged {
			continue
		}
		place := cols - 1 - d.Column
		fill := beadFill(opts, d, place)
		canvas.Link(beadHref(d), beadID(d))
		drawBeadSVG(canvas, frames[i], opts.Shape, margin, margin, beadID(d), fill, d.Engaged)
		canvas.LinkEnd()
	}

	canvas.Gend()
	canvas.End()
	return nil
}

func drawBeadSVG(canvas *svg.SVG, f BeadFrame, shape BeadShape, ox, oy float64, id, fill string, engaged bool) {
	attrs := []string{
		fmt.Sprintf(`id="%s"`, id),
		fmt.Sprintf(`fill="%s"`, fill),
		fmt.Sprintf(`data-engaged="%t"`, engaged),
	}
	cx := ox + f.CX
	cy := oy + f.CY
	switch shape {
	case ShapeCircle:
		canvas.Circle(cx, cy, f.H/2, attrs...)
	case ShapeSquare:
		canvas.Roundrect(cx-f.W/2, cy-f.H/2, f.W, f.H, f.H*0.15, f.H*0.15, attrs...)
	default:
		xs := []float64{cx, cx + f.W/2, cx, cx - f.W/2}
		ys := []float64{cy - f.H/2, cy, cy + f.H/2, cy}
		canvas.Polygon(xs, ys, attrs...)
	}
}

// drawCropMarkers puts a short L mark in each corner. The gallery scripts
// locate these by id to derive the crop box before rewriting the viewBox.
func drawCropMarkers(canvas *svg.SVG, width, height float64, g Geometry) {
	arm := g.RodSpacing / 4
	style := []string{`stroke="#000000"`, `stroke-width="0.75"`, `fill="none"`}

	mark := func(id string, x, y, dx, dy float64) {
		attrs := append([]string{fmt.Sprintf(`id="%s"`, id)}, style...)
		canvas.Polyline(
			[]float64{x + dx*arm, x, x},
			[]float64{y, y, y + dy*arm},
			attrs...)
	}

	canvas.Group(`id="crop-markers"`)
	mark("crop-nw", 0, 0, 1, 1)
	mark("crop-ne", width, 0, -1, 1)
	mark("crop-se", width, height, -1, -1)
	mark("crop-sw", 0, height, 1, -1)
	canvas.Gend()
}

// writeNumeralSVG renders a card back: the numeral centered on the card.
// Digits are emitted one text element each so the colored-numerals option
// can color by place value, mirroring the bead ramp on the front.
func writeNumeralSVG(w io.Writer, value int, opts Options, width, height float64) error {
	opts = opts.Normalize()
	text := fmt.Sprintf("%d", value)
	fontSize := height * 0.4
	advance := fontSize * 0.602 // monospace advance width

	canvas := svg.New(w)
	canvas.Start(width, height)
	if !opts.Transparent {
		canvas.Rect(0, 0, width, height, `id="background"`, `fill="#ffffff"`)
	}

	x := (width-advance*float64(len(text)))/2 + advance/2
	y := height/2 + fontSize*0.35
	style := `font-family="monospace"`
	size := fmt.Sprintf(`font-size="%.2f"`, fontSize)
	for i, r := range text {
		place := len(text) - 1 - i
		fill := colorMonochrome
		if opts.ColoredNumerals {
			fill = numeralColor(opts, place)
		}
		canvas.Text(x, y, string(r),
			fmt.Sprintf(`id="digit-%d"`, place), style, size,
			`text-anchor="middle"`, fmt.Sprintf(`fill="%s"`, fill))
		x += advance
	}
	canvas.End()
	return nil
}

// ExportAbacusSVG writes the static rendering to a file.
func ExportAbacusSVG(filename string, value int, opts Options) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return RenderSVG(file, value, opts)
}
