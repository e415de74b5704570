package panel

import "image"

// Point is a position in integer units. Whether it is absolute or local
// depends on where it came from: dispatch always hands observers positions
// local to the panel that emits.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rect is an axis-aligned rectangle expressed in its parent's coordinate
// space. The origin is the top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Origin returns the top-left corner of r.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Contains reports whether pt lies inside r. The test is half-open: the
// left and top edges are inside, the right and bottom edges are not, so a
// zero-sized rectangle contains nothing.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X < r.X+r.Width &&
		pt.Y >= r.Y && pt.Y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RectFromImage converts an image.Rectangle into a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	return Rect{X: ir.Min.X, Y: ir.Min.Y, Width: ir.Dx(), Height: ir.Dy()}
}

// Surface is a rectangular drawing target supplied by the host. A Panel
// never draws on it directly; it only carves out the sub-region belonging to
// each child and hands it to the child's paint hook.
type Surface interface {
	// Bounds returns the extent of the surface. Only Width and Height are
	// used by the tree; X and Y are backend-specific.
	Bounds() Rect
	// SubSurface returns the region r of this surface, where r is relative
	// to the surface's own top-left corner.
	SubSurface(r Rect) Surface
}

// EventKind identifies a kind of raw pointer event.
type EventKind uint8

const (
	EventNone    EventKind = iota // ignored by Root.Dispatch
	EventMove                     // pointer moved
	EventPress                    // pointer button pressed
	EventRelease                  // pointer button released
)

// String returns the lower-case name of the kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	default:
		return "none"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys held during a
// pointer event. Values can be combined with bitwise OR.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is a raw pointer event as delivered by the host. Pos is absolute on
// the root surface. Payload carries the backend's own event value (for
// example a *tcell.EventMouse) untouched.
type Event struct {
	Kind      EventKind
	Pos       Point
	Button    MouseButton
	Modifiers KeyModifiers
	Payload   any
}

// PointerEvent is the payload of the Pressed, Released and Moved signals.
// Pos is local to the panel emitting the signal.
type PointerEvent struct {
	Pos   Point
	Event Event
}
