package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/viz"
)

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestNewSolves(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	if m.Err() != nil {
		t.Fatalf("unexpected error: %v", m.Err())
	}
	if m.series.Len() != trajectory.DefaultParams().NumSamples {
		t.Errorf("expected %d samples, got %d", trajectory.DefaultParams().NumSamples, m.series.Len())
	}
	if !strings.Contains(m.View(), "trajsim") {
		t.Error("view missing title")
	}
}

func TestCursorBounds(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	m = press(t, m, key(tea.KeyUp))
	if m.cursor != 0 {
		t.Errorf("cursor moved above first slider: %d", m.cursor)
	}
	for range trajectory.AllParams() {
		m = press(t, m, key(tea.KeyDown))
	}
	if want := len(trajectory.AllParams()) - 1; m.cursor != want {
		t.Errorf("expected cursor %d, got %d", want, m.cursor)
	}
}

func TestAdjustClampsAndWaitsForCalculate(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	before := m.series
	m = press(t, m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	if trajectory.AllParams()[m.cursor] != trajectory.ParamV0 {
		t.Fatalf("expected v0 selected, got %s", trajectory.AllParams()[m.cursor])
	}

	m = press(t, m, key(tea.KeyRight))
	if m.Params().V0 != 11 {
		t.Errorf("expected v0=11, got %g", m.Params().V0)
	}
	if !m.stale || m.series != before {
		t.Error("adjusting should not re-solve")
	}

	for i := 0; i < 30; i++ {
		m = press(t, m, key(tea.KeyRight))
	}
	if m.Params().V0 != 20 {
		t.Errorf("expected v0 clamped to 20, got %g", m.Params().V0)
	}

	m = press(t, m, key(tea.KeyEnter))
	if m.stale || m.series == before {
		t.Error("enter should re-solve")
	}
	if m.series.VX[0] <= before.VX[0] {
		t.Errorf("faster launch should raise vx0: %g <= %g", m.series.VX[0], before.VX[0])
	}
}

func TestInvalidParamsShowMessage(t *testing.T) {
	p := trajectory.DefaultParams()
	p.Mass = 0
	m := New(p, integrators.Reference)
	if !errors.Is(m.Err(), dynamo.ErrInvalidParameter) {
		t.Fatalf("expected invalid parameter error, got %v", m.Err())
	}
	if !strings.Contains(m.View(), "m=0") {
		t.Error("view should show the error")
	}

	// stepping mass up brings it back into range
	for trajectory.AllParams()[m.cursor] != trajectory.ParamMass {
		m = press(t, m, key(tea.KeyDown))
	}
	m = press(t, m, key(tea.KeyRight), key(tea.KeyEnter))
	if m.Err() != nil {
		t.Errorf("expected recovery, got %v", m.Err())
	}
}

func TestPanelCycle(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	for i := 0; i < viz.NumPanels; i++ {
		m = press(t, m, key(tea.KeyTab))
	}
	if m.panel != 0 {
		t.Errorf("expected panel cycle to wrap, got %d", m.panel)
	}
	m = press(t, m, key(tea.KeyShiftTab))
	if m.panel != viz.NumPanels-1 {
		t.Errorf("expected last panel, got %d", m.panel)
	}
}

func TestInfoAndReset(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	m = press(t, m, runes("i"))
	if !m.showInfo || !strings.Contains(m.View(), "Time up until") {
		t.Error("info text not shown")
	}

	m = press(t, m, key(tea.KeyDown), key(tea.KeyLeft), runes("r"))
	if m.Params() != trajectory.DefaultParams() {
		t.Errorf("reset did not restore params: %v", m.Params())
	}
	if m.stale {
		t.Error("reset should re-solve")
	}
}

func TestQuit(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowResize(t *testing.T) {
	m := New(trajectory.DefaultParams(), integrators.Reference)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(Model)
	if m.width != 120 || m.height != 50 {
		t.Errorf("size not applied: %dx%d", m.width, m.height)
	}
}

func TestUnstableSolveRendersMessage(t *testing.T) {
	for _, n := range []int{8, 10, 20, 50} {
		p := trajectory.Params{TMax: 10, NumSamples: n, V0: 20, AngleDeg: 45, Gravity: 9.81, Drag: 5, Mass: 1}
		if errs := config.CheckBounds(p); len(errs) != 0 {
			t.Fatalf("n=%d: params should be inside slider bounds: %v", n, errs)
		}

		m := New(p, integrators.Reference)
		unstable := false
		for i := 0; i < viz.NumPanels; i++ {
			if strings.Contains(m.View(), "non-finite") {
				unstable = true
			}
			m = press(t, m, key(tea.KeyTab))
		}
		if !unstable {
			t.Errorf("n=%d: expected a non-finite panel message", n)
		}
	}
}

func TestIntegratorSelection(t *testing.T) {
	m := New(trajectory.DefaultParams(), "rk4")
	if m.Err() != nil {
		t.Fatalf("rk4: unexpected error: %v", m.Err())
	}
	ref := New(trajectory.DefaultParams(), integrators.Reference)
	last := m.series.Len() - 1
	if m.series.Y[last] == ref.series.Y[last] {
		t.Error("rk4 and semi-implicit should differ at the final sample")
	}
	if !strings.Contains(m.View(), "rk4") {
		t.Error("view should name the integrator")
	}

	bad := New(trajectory.DefaultParams(), "rk45")
	if bad.Err() == nil || !strings.Contains(bad.View(), "unknown integrator") {
		t.Errorf("expected unknown integrator message, got %v", bad.Err())
	}
}
