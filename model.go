package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

const tickInterval = time.Second / 30

// Screen offset of the widget's top-left corner, in cells.
const (
	viewOriginX = 2
	viewOriginY = 1
)

type model struct {
	widget    *Widget
	anim      *animator
	width     int
	height    int
	help      bool
	statusMsg string
	animating bool

	// Live pointer press, if any.
	pressed bool
	active  BeadDescriptor
}

func newModel(value int, opts Options) model {
	m := model{
		widget: NewWidget(value, opts),
		anim:   newAnimator(),
	}
	return m
}

// cellSize maps layout pixels onto terminal cells: three cells per rod
// spacing, two rows per bead step. The same mapping runs both ways, cells to
// pixels for the pointer and pixels to cells for the view.
func (m model) cellSize() (float64, float64) {
	g := m.widget.Geometry()
	return g.RodSpacing / 3, (g.BeadSize + g.AdjacentSpacing) / 2
}

// pointerPixels converts a mouse cell position to widget pixel coordinates.
func (m model) pointerPixels(cellX, cellY int) (float64, float64) {
	cw, ch := m.cellSize()
	return (float64(cellX-viewOriginX) + 0.5) * cw, (float64(cellY-viewOriginY) + 0.5) * ch
}

func (m model) Init() tea.Cmd {
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startAnimation kicks the display ticker after a state change. With
// animation off the beads snap immediately and no ticker runs.
func (m *model) startAnimation() tea.Cmd {
	if !m.widget.Options().Animate {
		m.anim.Reset()
		return nil
	}
	if m.animating {
		return nil
	}
	m.animating = true
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		descs, frames := m.widget.Geometry().Frames(m.widget.Columns(), m.widget.Options().Shape)
		if m.anim.Advance(descs, frames) {
			return m, tickCmd()
		}
		m.animating = false
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseLeft:
		px, py := m.pointerPixels(msg.X, msg.Y)
		if !m.pressed {
			cw, ch := m.cellSize()
			desc, ok := m.widget.Geometry().HitTest(
				m.widget.Columns(), m.widget.Options().Shape, px, py, cw/2, ch/2)
			if !ok {
				return m, nil
			}
			m.pressed = true
			m.active = desc
			m.widget.BeginGesture(desc, px, py)
			return m, nil
		}
		// Motion with the button held: feed the drag session.
		m.widget.MoveGesture(m.active, px, py)
		cmd := m.startAnimation()
		return m, cmd

	case tea.MouseRelease:
		if !m.pressed {
			return m, nil
		}
		m.pressed = false
		if !m.widget.EndGesture(m.active) {
			// Never crossed the threshold: this press was a click.
			m.widget.Click(m.active)
		}
		cmd := m.startAnimation()
		return m, cmd
	}
	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
		return m, nil
	case "esc":
		m.widget.ClearFocus()
		return m, nil
	case "tab":
		m.widget.FocusNext()
		return m, nil
	case "shift+tab", "backspace":
		m.widget.FocusPrev()
		return m, nil
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if m.widget.Focus() == -1 {
			m.widget.SetFocus(0)
		}
		m.widget.TypeDigit(int(key[0] - '0'))
		cmd := m.startAnimation()
		return m, cmd
	case "+", "=":
		m.widget.SetValue(m.widget.Value() + 1)
		cmd := m.startAnimation()
		return m, cmd
	case "-", "_":
		if v := m.widget.Value(); v > 0 {
			m.widget.SetValue(v - 1)
		}
		cmd := m.startAnimation()
		return m, cmd
	case "r":
		m.widget.SetValue(0)
		cmd := m.startAnimation()
		return m, cmd
	case "y":
		m.statusMsg = m.yankValue()
		return m, nil
	case "s":
		m.rebuild(func(o *Options) { o.Shape = (o.Shape + 1) % 3 })
		return m, nil
	case "c":
		m.rebuild(func(o *Options) { o.Scheme = (o.Scheme + 1) % 4 })
		return m, nil
	case "p":
		m.rebuild(func(o *Options) { o.Palette = (o.Palette + 1) % 5 })
		return m, nil
	case "a":
		m.rebuild(func(o *Options) { o.Animate = !o.Animate })
		return m, nil
	case "g":
		m.rebuild(func(o *Options) { o.Gestures = !o.Gestures })
		return m, nil
	case "S":
		if err := ExportAbacusPNG("soroban.png", m.widget.Value(), m.widget.Options()); err != nil {
			m.statusMsg = "export failed: " + err.Error()
		} else {
			m.statusMsg = "wrote soroban.png"
		}
		return m, nil
	case "V":
		if err := ExportAbacusSVG("soroban.svg", m.widget.Value(), m.widget.Options()); err != nil {
			m.statusMsg = "export failed: " + err.Error()
		} else {
			m.statusMsg = "wrote soroban.svg"
		}
		return m, nil
	}
	return m, nil
}

// rebuild swaps the widget for one with adjusted options, keeping the value.
// Focus and any live gesture are intentionally dropped; a configuration
// change is an external update and external updates win.
func (m *model) rebuild(mutate func(*Options)) {
	opts := m.widget.Options()
	mutate(&opts)
	value := m.widget.Value()
	m.widget = NewWidget(value, opts)
	m.anim.Reset()
	m.pressed = false
}
