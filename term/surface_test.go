package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/panel"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCellSurfaceBounds(t *testing.T) {
	s := newScreen(t, 20, 10)
	cs := NewCellSurface(s)
	if got := cs.Bounds(); got != (panel.Rect{Width: 20, Height: 10}) {
		t.Errorf("Bounds = %v", got)
	}
	sub := cs.SubSurface(panel.Rect{X: 2, Y: 3, Width: 5, Height: 4})
	if got := sub.Bounds(); got != (panel.Rect{X: 2, Y: 3, Width: 5, Height: 4}) {
		t.Errorf("sub Bounds = %v", got)
	}
}

func TestCellSurfaceSetContentIsLocal(t *testing.T) {
	s := newScreen(t, 20, 10)
	sub := NewCellSurface(s).SubSurface(panel.Rect{X: 2, Y: 3, Width: 5, Height: 4}).(*CellSurface)
	nested := sub.SubSurface(panel.Rect{X: 1, Y: 1, Width: 2, Height: 2}).(*CellSurface)

	nested.SetContent(0, 0, 'x', tcell.StyleDefault)
	if got := cellAt(s, 3, 4); got != 'x' {
		t.Errorf("cell (3,4) = %q, want 'x'", got)
	}
}

func TestCellSurfaceClips(t *testing.T) {
	s := newScreen(t, 20, 10)
	sub := NewCellSurface(s).SubSurface(panel.Rect{X: 2, Y: 2, Width: 3, Height: 3}).(*CellSurface)
	// Child region sticking out of its parent on the right.
	wide := sub.SubSurface(panel.Rect{X: 2, Y: 0, Width: 10, Height: 1}).(*CellSurface)
	wide.Fill('#', tcell.StyleDefault)

	if got := cellAt(s, 4, 2); got != '#' {
		t.Errorf("cell inside clip = %q, want '#'", got)
	}
	if got := cellAt(s, 5, 2); got == '#' {
		t.Error("write outside the parent region should be clipped")
	}
	sub.SetContent(-1, 0, '!', tcell.StyleDefault)
	if got := cellAt(s, 1, 2); got == '!' {
		t.Error("negative local coordinates should be clipped")
	}
}

func TestCellSurfaceDrawText(t *testing.T) {
	s := newScreen(t, 20, 2)
	cs := NewCellSurface(s)
	end := cs.DrawText(1, 0, "a世b", tcell.StyleDefault)
	if end != 5 {
		t.Errorf("end column = %d, want 5 (wide rune takes two cells)", end)
	}
	if cellAt(s, 1, 0) != 'a' || cellAt(s, 2, 0) != '世' || cellAt(s, 4, 0) != 'b' {
		t.Errorf("unexpected row: %q %q %q", cellAt(s, 1, 0), cellAt(s, 2, 0), cellAt(s, 4, 0))
	}
}

func TestRootPaintsOntoScreen(t *testing.T) {
	s := newScreen(t, 20, 10)
	root := panel.NewRoot(NewCellSurface(s))
	if root.Rect() != (panel.Rect{Width: 20, Height: 10}) {
		t.Fatalf("root rect = %v", root.Rect())
	}
	box := root.NewChild("box", panel.Rect{X: 5, Y: 5, Width: 2, Height: 2})
	box.OnPaint = func(p *panel.Panel, sf panel.Surface) {
		sf.(*CellSurface).Fill('B', tcell.StyleDefault)
	}
	hidden := root.NewChild("hidden", panel.Rect{X: 0, Y: 0, Width: 2, Height: 2})
	hidden.Visible = false
	hidden.OnPaint = func(p *panel.Panel, sf panel.Surface) {
		sf.(*CellSurface).Fill('H', tcell.StyleDefault)
	}

	root.Render()
	for _, pt := range []panel.Point{{X: 5, Y: 5}, {X: 6, Y: 6}} {
		if got := cellAt(s, pt.X, pt.Y); got != 'B' {
			t.Errorf("cell %v = %q, want 'B'", pt, got)
		}
	}
	if got := cellAt(s, 7, 7); got == 'B' {
		t.Error("box painted outside its rect")
	}
	if got := cellAt(s, 0, 0); got == 'H' {
		t.Error("invisible panel painted")
	}
}
