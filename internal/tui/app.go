package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/viz"
)

const (
	sliderWidth = 24
	sparkWidth  = 16
	minPlotW    = 40
	minPlotH    = 10
)

// Model is the slider editor. Values change on key presses; the trajectory is
// only recomputed on Calculate.
type Model struct {
	integrator string

	params   trajectory.Params
	initial  trajectory.Params
	cursor   int
	panel    int
	showInfo bool
	stale    bool

	series  *trajectory.Series
	energy  *trajectory.EnergySeries
	summary metrics.Summary
	err     error

	width  int
	height int
}

// New builds a Model that solves with the named integrator and solves p once
// so the first frame has plots.
func New(p trajectory.Params, integrator string) Model {
	m := Model{
		integrator: integrator,
		params:     p,
		initial:    p,
		width:      80,
		height:     24,
	}
	m.calculate()
	return m
}

func (m Model) Params() trajectory.Params { return m.params }

// Err is the error from the last Calculate, nil on success.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	params := trajectory.AllParams()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		m.nudge(params[m.cursor], -1)
	case "right", "l":
		m.nudge(params[m.cursor], 1)
	case "enter":
		m.calculate()
	case "tab":
		m.panel = (m.panel + 1) % viz.NumPanels
	case "shift+tab":
		m.panel = (m.panel + viz.NumPanels - 1) % viz.NumPanels
	case "i":
		m.showInfo = !m.showInfo
	case "r":
		m.params = m.initial
		m.calculate()
	}
	return m, nil
}

func (m *Model) nudge(p trajectory.Param, dir float64) {
	r := config.Bounds(p)
	next := r.Clamp(m.params.Get(p) + dir*r.Step)
	if next != m.params.Get(p) {
		m.params = m.params.With(p, next)
		m.stale = true
	}
}

func (m *Model) calculate() {
	m.stale = false
	integ, err := integrators.New(m.integrator)
	if err != nil {
		m.err = err
		return
	}
	s, err := trajectory.SolveWith(m.params, integ)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.series = s
	m.energy = trajectory.DeriveEnergy(s, m.params.Mass, m.params.Gravity)
	m.summary = metrics.Summarize(m.params, m.series, m.energy)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.Title.Render("trajsim") + "  " + viz.Subtle.Render("projectile with quadratic drag, "+m.integrator) + "\n\n")

	for i, p := range trajectory.AllParams() {
		r := config.Bounds(p)
		v := m.params.Get(p)
		line := fmt.Sprintf("%-6s %9.2f %-5s %s", p, v, r.Unit, viz.Slider(v, r.Min, r.Max, sliderWidth))
		if i == m.cursor {
			b.WriteString("  " + viz.Selected.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}

	if m.showInfo {
		p := trajectory.AllParams()[m.cursor]
		r := config.Bounds(p)
		b.WriteString("\n  " + viz.MetricLabel.Render(fmt.Sprintf("%s [%g, %g] step %g", config.Info(p), r.Min, r.Max, r.Step)) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString("  " + viz.Error.Render(m.err.Error()) + "\n")
	case m.stale:
		b.WriteString("  " + viz.Warning.Render("parameters changed, press enter to calculate") + "\n")
	default:
		b.WriteString("  " + m.metricsLine() + "\n")
	}

	if m.series != nil {
		b.WriteString("\n  " + viz.Separator(max(m.width-4, minPlotW)) + "\n")
		w := max(m.width-16, minPlotW)
		h := max(m.height-len(trajectory.AllParams())-14, minPlotH)
		panels := viz.Panels(m.series, m.energy)
		b.WriteString("\n" + viz.RenderPanel(panels[m.panel], w, h) + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("  ↑↓ select  ←→ adjust  enter calculate  tab plot  i info  r reset  q quit") + "\n")
	return b.String()
}

func (m Model) metricsLine() string {
	metric := func(label, value string) string {
		return viz.MetricLabel.Render(label+" ") + viz.MetricValue.Render(value)
	}
	parts := []string{metric("n", fmt.Sprintf("%d", m.summary.Samples))}
	if m.summary.Apex != nil {
		parts = append(parts, metric("apex", fmt.Sprintf("%.2fm @ %.2fs", m.summary.Apex.Y, m.summary.Apex.T)))
	}
	if m.summary.Range != nil {
		parts = append(parts, metric("range", fmt.Sprintf("%.2fm", m.summary.Range.X)))
	}
	parts = append(parts,
		metric("vmax", fmt.Sprintf("%.2f", m.summary.MaxSpeed)),
		metric("ΔE", fmt.Sprintf("%.2e", m.summary.EnergyDrift)),
	)
	if m.energy != nil && dynamo.State(m.energy.TE).IsValid() {
		parts = append(parts, viz.MetricLabel.Render("TE ")+viz.SparklineChart(m.energy.TE, sparkWidth))
	}
	return strings.Join(parts, "  ")
}

// Run starts the UI on the alternate screen and blocks until quit.
func Run(p trajectory.Params, integrator string) error {
	prog := tea.NewProgram(New(p, integrator), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
