package main

// Geometry is the scaled constant table that places every rod, bar, and bead.
// All values are pixels. The same table drives the interactive view, the PNG
// cards, and the SVG output, so the three renderings land beads on identical
// coordinates.
type Geometry struct {
	Scale           float64
	RodSpacing      float64
	BeadSize        float64
	RodThickness    float64
	BarThickness    float64
	HeavenEarthGap  float64
	ActiveGap       float64
	InactiveGap     float64
	AdjacentSpacing float64
}

func NewGeometry(scale float64) Geometry {
	if scale < minScaleFactor || scale > maxScaleFactor {
		scale = defaultScaleFactor
	}
	return Geometry{
		Scale:           scale,
		RodSpacing:      baseRodSpacing * scale,
		BeadSize:        baseBeadSize * scale,
		RodThickness:    baseRodThickness * scale,
		BarThickness:    baseBarThickness * scale,
		HeavenEarthGap:  baseHeavenEarthGap * scale,
		ActiveGap:       baseActiveGap * scale,
		InactiveGap:     baseInactiveGap * scale,
		AdjacentSpacing: baseAdjacentSpacing * scale,
	}
}

func (g Geometry) CanvasWidth(columns int) float64 {
	return float64(columns) * g.RodSpacing
}

func (g Geometry) CanvasHeight() float64 {
	return g.HeavenEarthGap + g.BarThickness + 5*(g.BeadSize+g.AdjacentSpacing) + g.InactiveGap
}

func (g Geometry) RodCenterX(column int) float64 {
	return float64(column)*g.RodSpacing + g.RodSpacing/2
}

func (g Geometry) BarTop() float64 {
	return g.HeavenEarthGap
}

func (g Geometry) BarBottom() float64 {
	return g.HeavenEarthGap + g.BarThickness
}

// HeavenBeadY gives the vertical center of a column's heaven bead.
func (g Geometry) HeavenBeadY(engaged bool) float64 {
	if engaged {
		return g.HeavenEarthGap - g.BeadSize/2 - g.ActiveGap
	}
	return g.HeavenEarthGap - g.InactiveGap - g.BeadSize/2
}

// EarthBeadY gives the vertical center of the earth bead at position pos
// (0 nearest the bar) in a column with engagedCount beads engaged. The three
// branches and their operation order are the parity contract with the card
// templates; do not refactor the arithmetic.
func (g Geometry) EarthBeadY(pos, engagedCount int) float64 {
	barBottom := g.BarBottom()
	if pos < engagedCount {
		return barBottom + g.ActiveGap + g.BeadSize/2 + float64(pos)*(g.BeadSize+g.AdjacentSpacing)
	}
	if engagedCount > 0 {
		return barBottom + g.ActiveGap + g.BeadSize/2 +
			float64(engagedCount-1)*(g.BeadSize+g.AdjacentSpacing) +
			g.BeadSize/2 + g.InactiveGap + g.BeadSize/2 +
			float64(pos-engagedCount)*(g.BeadSize+g.AdjacentSpacing)
	}
	return barBottom + g.InactiveGap + g.BeadSize/2 + float64(pos)*(g.BeadSize+g.AdjacentSpacing)
}

// BeadWidth is the horizontal extent of a bead silhouette. Diamonds are
// wider than tall; circles and squares are square.
func (g Geometry) BeadWidth(shape BeadShape) float64 {
	if shape == ShapeDiamond {
		return g.BeadSize * diamondWidthFactor
	}
	return g.BeadSize
}

// GestureThreshold is the drag distance a bead must travel before a gesture
// commits to a direction.
func (g Geometry) GestureThreshold() float64 {
	return g.BeadSize * gestureThresholdRatio
}

// BeadFrame is the placed bounding frame of one bead, centered on (CX, CY).
type BeadFrame struct {
	CX, CY float64
	W, H   float64
}

// Left is the frame's horizontal anchor. Animation interpolates from this
// per-shape anchor so wide diamonds and narrow circles originate at the
// correct x offset.
func (f BeadFrame) Left() float64 {
	return f.CX - f.W/2
}

func (f BeadFrame) Top() float64 {
	return f.CY - f.H/2
}

// Frame places a single bead of the given column.
func (g Geometry) Frame(shape BeadShape, column int, state ColumnState, kind BeadKind, pos int) BeadFrame {
	f := BeadFrame{
		CX: g.RodCenterX(column),
		W:  g.BeadWidth(shape),
		H:  g.BeadSize,
	}
	if kind == HeavenBead {
		f.CY = g.HeavenBeadY(state.Heaven)
	} else {
		f.CY = g.EarthBeadY(pos, state.Earth)
	}
	return f
}

// Frames places every bead of the abacus, one frame per descriptor, in
// column-major order: heaven first, then earth positions 0..3. The result
// depends only on the inputs; recomputing it yields identical coordinates.
func (g Geometry) Frames(states []ColumnState, shape BeadShape) ([]BeadDescriptor, []BeadFrame) {
	descs := make([]BeadDescriptor, 0, len(states)*5)
	frames := make([]BeadFrame, 0, len(states)*5)
	for col, state := range states {
		descs = append(descs, BeadDescriptor{Kind: HeavenBead, Column: col, Engaged: state.Heaven})
		frames = append(frames, g.Frame(shape, col, state, HeavenBead, 0))
		for p := 0; p < earthBeadsPerColumn; p++ {
			descs = append(descs, BeadDescriptor{Kind: EarthBead, Column: col, Position: p, Engaged: p < state.Earth})
			frames = append(frames, g.Frame(shape, col, state, EarthBead, p))
		}
	}
	return descs, frames
}

// HitTest finds the bead whose frame contains (x, y), growing each frame by
// the given slack so coarse pointing devices (terminal cells) can still land
// on a bead. The nearest center wins when slack makes frames overlap.
func (g Geometry) HitTest(states []ColumnState, shape BeadShape, x, y, slackX, slackY float64) (BeadDescriptor, bool) {
	descs, frames := g.Frames(states, shape)
	best := -1
	bestDist := 0.0
	for i, f := range frames {
		dx := x - f.CX
		dy := y - f.CY
		if abs64(dx) > f.W/2+slackX || abs64(dy) > f.H/2+slackY {
			continue
		}
		dist := dx*dx + dy*dy
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == -1 {
		return BeadDescriptor{}, false
	}
	return descs[best], true
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
