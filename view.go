package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorFrame))
	focusStyle  = lipgloss.NewStyle().Reverse(true).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
)

// beadRune picks the glyph for a bead. Hollow glyphs mark disengaged beads,
// which reads better than position alone at terminal resolution.
func beadRune(shape BeadShape, engaged bool) string {
	switch shape {
	case ShapeCircle:
		if engaged {
			return "●"
		}
		return "○"
	case ShapeSquare:
		if engaged {
			return "■"
		}
		return "□"
	}
	if engaged {
		return "◆"
	}
	return "◇"
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	w := m.widget
	opts := w.Options()
	g := w.Geometry()
	states := w.Columns()
	cols := len(states)
	_, ch := m.cellSize()

	rows := int(g.CanvasHeight()/ch) + 1
	gridWidth := cols * 3

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, gridWidth)
		for x := range grid[r] {
			grid[r][x] = " "
		}
	}

	// Rods, then the bar across them.
	for col := 0; col < cols; col++ {
		x := col*3 + 1
		for r := 0; r < rows; r++ {
			grid[r][x] = frameStyle.Render("│")
		}
	}
	barRow := int((g.BarTop() + g.BarThickness/2) / ch)
	if barRow >= 0 && barRow < rows {
		for x := 0; x < gridWidth; x++ {
			glyph := "═"
			if x%3 == 1 {
				glyph = "╪"
			}
			grid[barRow][x] = frameStyle.Render(glyph)
		}
	}

	descs, frames := g.Frames(states, opts.Shape)
	for i, d := range descs {
		if opts.HideInactive && !d.Engaged {
			continue
		}
		cy := frames[i].CY
		if opts.Animate {
			cy = m.anim.DisplayedY(beadKey{d.Kind, d.Column, d.Position}, cy)
		}
		r := int(cy / ch)
		if r < 0 || r >= rows {
			continue
		}
		place := cols - 1 - d.Column
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(beadFill(opts, d, place)))
		grid[r][d.Column*3+1] = style.Render(beadRune(opts.Shape, d.Engaged))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("soroban  %d", w.Value())))
	b.WriteString("\n")
	margin := strings.Repeat(" ", viewOriginX)
	for r := 0; r < rows; r++ {
		b.WriteString(margin)
		b.WriteString(strings.Join(grid[r], ""))
		b.WriteString("\n")
	}

	// Digit row, with the focused column highlighted.
	b.WriteString(margin)
	for col, c := range states {
		cell := fmt.Sprintf(" %d ", c.Digit())
		if col == w.Focus() {
			cell = focusStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n\n")

	status := m.statusMsg
	if status == "" {
		status = fmt.Sprintf("%s/%s/%s  tab:focus 0-9:digit y:yank ?:help q:quit",
			opts.Shape, opts.Scheme, opts.Palette)
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

func (m model) helpView() string {
	lines := []string{
		"Soroban Help",
		"============",
		"",
		"Pointer:",
		"  click a bead         toggle it (earth beads carry neighbors along)",
		"  drag a bead          push it toward or away from the bar",
		"",
		"Keyboard entry:",
		"  tab / shift+tab      move edit focus right / left (wraps)",
		"  backspace            move edit focus left",
		"  0-9                  set the focused column, advance focus",
		"  escape               drop edit focus",
		"",
		"Value:",
		"  + / -                increment / decrement",
		"  r                    reset to zero",
		"  y                    copy value to clipboard",
		"",
		"Appearance:",
		"  s / c / p            cycle shape / color scheme / palette",
		"  a / g                toggle animation / gestures",
		"  S / V                export soroban.png / soroban.svg",
		"",
		"Press any key to close help.",
	}
	return strings.Join(lines, "\n")
}
