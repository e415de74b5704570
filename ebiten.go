package panel

import (
	"errors"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// --- Pointer polling ---

// pointerSnapshot is the mouse state read at one tick.
type pointerSnapshot struct {
	pos     Point
	buttons [3]bool // indexed by MouseButton
	mods    KeyModifiers
}

// EbitenInput turns ebiten's polled mouse state into raw panel events. Call
// Poll once per Update tick.
type EbitenInput struct {
	last    Point
	hasLast bool
	down    [3]bool
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Poll reads the cursor and button state and appends the resulting events
// to buf.
func (in *EbitenInput) Poll(buf []Event) []Event {
	mx, my := ebiten.CursorPosition()
	snap := pointerSnapshot{
		pos:  Point{mx, my},
		mods: readModifiers(),
	}
	snap.buttons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	snap.buttons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	snap.buttons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return in.update(snap, buf)
}

// update diffs snap against the previous tick. A move, if any, comes first
// so that presses land on an up-to-date hover state.
func (in *EbitenInput) update(snap pointerSnapshot, buf []Event) []Event {
	if !in.hasLast || snap.pos != in.last {
		buf = append(buf, Event{Kind: EventMove, Pos: snap.pos, Modifiers: snap.mods})
		in.last = snap.pos
		in.hasLast = true
	}
	for b := range snap.buttons {
		now := snap.buttons[b]
		if now == in.down[b] {
			continue
		}
		kind := EventRelease
		if now {
			kind = EventPress
		}
		buf = append(buf, Event{Kind: kind, Pos: snap.pos, Button: MouseButton(b), Modifiers: snap.mods})
		in.down[b] = now
	}
	return buf
}

// --- Host loop ---

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	ClearColor color.Color
	// ShowHover prints the currently hovered panel path in the top-left
	// corner.
	ShowHover bool
}

// errNoSize is returned by Run for a config without a window size.
var errNoSize = errors.New("panel: RunConfig needs a positive Width and Height")

// game implements ebiten.Game around a Root.
type game struct {
	root   *Root
	canvas *ebiten.Image
	input  EbitenInput
	events []Event
	cfg    RunConfig
}

// Run opens a window, builds the tree with build and drives it until the
// window closes or an observer returns an error. The root paints onto an
// offscreen image of the configured size, which is then drawn to the screen.
func Run(build func(root *Root) error, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errNoSize
	}
	canvas := ebiten.NewImage(cfg.Width, cfg.Height)
	root := NewRoot(NewImageSurface(canvas))
	if err := build(root); err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{root: root, canvas: canvas, cfg: cfg})
}

func (g *game) Update() error {
	g.events = g.input.Poll(g.events[:0])
	return g.root.DispatchAll(g.events)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.Clear()
	if g.cfg.ClearColor != nil {
		g.canvas.Fill(g.cfg.ClearColor)
	}
	g.root.Render()
	screen.DrawImage(g.canvas, nil)
	if g.cfg.ShowHover {
		ebitenutil.DebugPrint(screen, HoverPath(g.root.Panel))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// HoverPath returns the names along the chain of first hovered children
// starting at p, joined with " > ".
func HoverPath(p *Panel) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	for n := p; len(n.hovered) > 0; {
		n = n.hovered[0]
		sb.WriteString(" > ")
		sb.WriteString(n.Name)
	}
	return sb.String()
}
