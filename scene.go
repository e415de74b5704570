package panel

import (
	"io"
	"os"
	"time"
)

// Root is the top-level panel. It owns the drawing surface and is the only
// entry point for raw pointer events.
//
// The root's origin is fixed at (0, 0) on its surface, so event positions
// handed to Dispatch are already root-local.
type Root struct {
	*Panel

	surface Surface

	debug    bool
	debugOut io.Writer
}

// NewRoot creates a root panel covering the whole of s.
func NewRoot(s Surface) *Root {
	b := s.Bounds()
	r := &Root{
		Panel:    New("root", Rect{Width: b.Width, Height: b.Height}),
		surface:  s,
		debugOut: os.Stderr,
	}
	r.Panel.root = r
	return r
}

// Surface returns the root's drawing surface.
func (r *Root) Surface() Surface {
	return r.surface
}

// SetSurface replaces the drawing surface and resizes the root to match,
// for hosts whose window can be resized.
func (r *Root) SetSurface(s Surface) {
	b := s.Bounds()
	r.surface = s
	r.Panel.rect = Rect{Width: b.Width, Height: b.Height}
}

// Render paints the whole tree onto the root surface.
func (r *Root) Render() {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}
	r.Paint(r.surface)
	if r.debug {
		r.debugLog("render", time.Since(t0))
	}
}

// Dispatch routes one raw pointer event through the tree. The event
// position must be relative to the top-left of the root surface. Kinds
// other than move, press and release are ignored.
//
// Dispatch runs to completion before returning. The first observer error
// aborts the walk and is returned.
func (r *Root) Dispatch(ev Event) error {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}
	var err error
	switch ev.Kind {
	case EventMove:
		err = r.dispatchMove(ev.Pos, ev)
	case EventPress:
		err = r.dispatchPress(ev.Pos, ev)
	case EventRelease:
		err = r.dispatchRelease(ev.Pos, ev)
	default:
		return nil
	}
	if r.debug {
		r.debugLog(ev.Kind.String(), time.Since(t0))
		if err != nil {
			r.debugf("dispatch %s at (%d, %d): %v", ev.Kind, ev.Pos.X, ev.Pos.Y, err)
		}
	}
	return err
}

// DispatchAll dispatches events in order and stops at the first error.
func (r *Root) DispatchAll(events []Event) error {
	for _, ev := range events {
		if err := r.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed panels panic, tree depth and child count warnings are printed,
// and per-dispatch and per-render timings are logged to the debug output.
func (r *Root) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug = enabled
}

// SetDebugOutput redirects debug logging. The default is os.Stderr.
func (r *Root) SetDebugOutput(w io.Writer) {
	r.debugOut = w
	debugOut = w
}

// globalDebug mirrors the most recently set Root debug flag so that panel
// operations (which lack a Root pointer) can check it cheaply. Only valid
// with a single Root; multiple Roots with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
