// Package term adapts tcell screens and mouse events to the panel tree, so
// the same panels can be driven from a terminal.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/panel"
)

// CellSurface is a panel.Surface over a rectangular region of a
// tcell.Screen. Coordinates are cells. Writes outside the region are
// dropped.
type CellSurface struct {
	screen tcell.Screen
	origin panel.Point // absolute top-left, may lie off-screen
	size   panel.Rect  // Width and Height only
	clip   panel.Rect  // absolute, intersection with every ancestor
}

// NewCellSurface covers the whole screen.
func NewCellSurface(s tcell.Screen) *CellSurface {
	w, h := s.Size()
	full := panel.Rect{Width: w, Height: h}
	return &CellSurface{screen: s, size: full, clip: full}
}

// Screen returns the underlying screen.
func (c *CellSurface) Screen() tcell.Screen {
	return c.screen
}

// Bounds returns the region in absolute screen cells, before clipping.
func (c *CellSurface) Bounds() panel.Rect {
	return panel.Rect{X: c.origin.X, Y: c.origin.Y, Width: c.size.Width, Height: c.size.Height}
}

// SubSurface returns the region r relative to this surface.
func (c *CellSurface) SubSurface(r panel.Rect) panel.Surface {
	origin := c.origin.Add(r.Origin())
	abs := panel.Rect{X: origin.X, Y: origin.Y, Width: r.Width, Height: r.Height}
	return &CellSurface{
		screen: c.screen,
		origin: origin,
		size:   panel.Rect{Width: r.Width, Height: r.Height},
		clip:   panel.RectFromImage(abs.Image().Intersect(c.clip.Image())),
	}
}

// SetContent writes one cell at local (x, y).
func (c *CellSurface) SetContent(x, y int, ch rune, style tcell.Style) {
	abs := c.origin.Add(panel.Point{X: x, Y: y})
	if !c.clip.Contains(abs) {
		return
	}
	c.screen.SetContent(abs.X, abs.Y, ch, nil, style)
}

// Fill sets every cell of the region to ch.
func (c *CellSurface) Fill(ch rune, style tcell.Style) {
	for y := 0; y < c.size.Height; y++ {
		for x := 0; x < c.size.Width; x++ {
			c.SetContent(x, y, ch, style)
		}
	}
}

// DrawText writes text on row y starting at column x, advancing by each
// rune's display width. It returns the column after the last rune.
func (c *CellSurface) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.SetContent(x, y, r, style)
		x += w
	}
	return x
}
