package panel

// panelIDCounter is a plain counter (no atomic; the tree is single-threaded).
var panelIDCounter uint32

func nextPanelID() uint32 {
	panelIDCounter++
	return panelIDCounter
}

// Panel is a node of the panel tree. It owns a rectangle in its parent's
// coordinate space, an ordered list of children and five signals.
//
// Children are owned by their parent through the children list. The parent
// field is a back-reference only and is kept consistent by AddChild and
// RemoveChild; it is never assigned directly.
type Panel struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent   *Panel
	children []*Panel
	hovered  []*Panel // ordered set, always a subset of children

	rect Rect

	// Visible controls painting only. Invisible panels still receive
	// pointer events.
	Visible bool

	// Metadata
	UserData any

	// OnPaint draws the panel's own appearance onto s before its children
	// are painted over it. Nil for pure containers.
	OnPaint func(p *Panel, s Surface)

	Pressed  *Signal[PointerEvent]
	Released *Signal[PointerEvent]
	Moved    *Signal[PointerEvent]
	Entered  *Signal[Event]
	Exited   *Signal[Event]

	// Set on the panel embedded in a Root; terminates Canvas lookups.
	root *Root

	disposed bool
}

// New creates a detached panel covering r.
func New(name string, r Rect) *Panel {
	p := &Panel{
		ID:      nextPanelID(),
		Name:    name,
		rect:    r,
		Visible: true,
	}
	p.Pressed = &Signal[PointerEvent]{name: "pressed", owner: p}
	p.Released = &Signal[PointerEvent]{name: "released", owner: p}
	p.Moved = &Signal[PointerEvent]{name: "moved", owner: p}
	p.Entered = &Signal[Event]{name: "entered", owner: p}
	p.Exited = &Signal[Event]{name: "exited", owner: p}
	return p
}

// NewChild creates a panel covering r and appends it to p's children.
func (p *Panel) NewChild(name string, r Rect) *Panel {
	if globalDebug {
		debugCheckDisposed(p, "NewChild")
	}
	c := New(name, r)
	c.parent = p
	p.children = append(p.children, c)
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(p)
	}
	return c
}

// Rect returns the panel's rectangle in its parent's coordinate space.
func (p *Panel) Rect() Rect {
	return p.rect
}

// SetRect moves or resizes the panel. Hover state is refreshed on the next
// move event.
func (p *Panel) SetRect(r Rect) {
	p.rect = r
}

// Parent returns the panel's parent, or nil for a detached panel or a root.
func (p *Panel) Parent() *Panel {
	return p.parent
}

// --- Tree manipulation ---

// AddChild appends c to p's children. c must be detached: moving a panel
// from one parent to another takes an explicit RemoveChild first. On error
// the tree is left unchanged.
func (p *Panel) AddChild(c *Panel) error {
	if c == nil {
		return ErrNilPanel
	}
	if globalDebug {
		debugCheckDisposed(p, "AddChild (parent)")
		debugCheckDisposed(c, "AddChild (child)")
	}
	if c.root != nil {
		return ErrRootAttach
	}
	if c.parent != nil {
		return ErrInvalidReparenting
	}
	if isAncestor(c, p) {
		return ErrCycle
	}
	c.parent = p
	p.children = append(p.children, c)
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(p)
	}
	return nil
}

// RemoveChild detaches c from p. c keeps its own subtree and can be
// attached elsewhere afterwards.
func (p *Panel) RemoveChild(c *Panel) error {
	if c == nil {
		return ErrNilPanel
	}
	if c.parent != p || !removePanel(&p.children, c) {
		return ErrNotAChild
	}
	removePanel(&p.hovered, c)
	c.parent = nil
	return nil
}

// RemoveFromParent detaches p from its parent.
// No-op if p has no parent.
func (p *Panel) RemoveFromParent() {
	if p.parent == nil {
		return
	}
	_ = p.parent.RemoveChild(p)
}

// Children returns the child list in paint and traversal order. The
// returned slice MUST NOT be mutated by the caller.
func (p *Panel) Children() []*Panel {
	return p.children
}

// NumChildren returns the number of children.
func (p *Panel) NumChildren() int {
	return len(p.children)
}

// ChildAt returns the child at the given index.
func (p *Panel) ChildAt(index int) *Panel {
	return p.children[index]
}

// Hovered returns the children currently under the pointer, in the order
// they were hit. The returned slice MUST NOT be mutated by the caller.
func (p *Panel) Hovered() []*Panel {
	return p.hovered
}

// IsHovered reports whether c is one of p's hovered children.
func (p *Panel) IsHovered(c *Panel) bool {
	return indexOf(p.hovered, c) >= 0
}

// Walk calls fn for p and every descendant in depth-first pre-order.
// Returning false from fn skips that panel's subtree.
func (p *Panel) Walk(fn func(*Panel) bool) {
	if !fn(p) {
		return
	}
	for _, c := range p.children {
		c.Walk(fn)
	}
}

// FindByName returns the first panel in p's subtree (p included) with the
// given name, or nil.
func (p *Panel) FindByName(name string) *Panel {
	var found *Panel
	p.Walk(func(n *Panel) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// --- Coordinates ---

// ToLocal converts pt from the parent's coordinate space into p's.
func (p *Panel) ToLocal(pt Point) Point {
	return pt.Sub(p.rect.Origin())
}

// ToParent converts pt from p's coordinate space into the parent's.
func (p *Panel) ToParent(pt Point) Point {
	return pt.Add(p.rect.Origin())
}

// AbsolutePosition returns p's top-left corner in the coordinate space of
// the topmost ancestor.
func (p *Panel) AbsolutePosition() Point {
	var pt Point
	for n := p; n != nil; n = n.parent {
		pt = n.ToParent(pt)
	}
	return pt
}

// --- Disposal ---

// Dispose removes p from its parent, disconnects every slot and recursively
// disposes all descendants. A Root cannot be disposed through its panel.
func (p *Panel) Dispose() {
	if p.disposed || p.root != nil {
		return
	}
	p.RemoveFromParent()
	p.dispose()
}

func (p *Panel) dispose() {
	p.disposed = true
	for _, c := range p.children {
		c.parent = nil
		c.dispose()
	}
	p.children = nil
	p.hovered = nil
	p.parent = nil
	p.OnPaint = nil
	p.UserData = nil
	p.Pressed.DisconnectAll()
	p.Released.DisconnectAll()
	p.Moved.DisconnectAll()
	p.Entered.DisconnectAll()
	p.Exited.DisconnectAll()
}

// IsDisposed returns true if p has been disposed.
func (p *Panel) IsDisposed() bool {
	return p.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Panel) bool {
	for n := node; n != nil; n = n.parent {
		if n == candidate {
			return true
		}
	}
	return false
}

func indexOf(list []*Panel, p *Panel) int {
	for i, c := range list {
		if c == p {
			return i
		}
	}
	return -1
}

// removePanel deletes p from *list in place, preserving order.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removePanel(list *[]*Panel, p *Panel) bool {
	s := *list
	i := indexOf(s, p)
	if i < 0 {
		return false
	}
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	*list = s[:len(s)-1]
	return true
}
