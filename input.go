package panel

import "slices"

// Dispatch walks are depth-first and pre-order: a child is visited if and
// only if the position, already local to the current panel, falls inside
// the child's rectangle. Overlapping siblings are all visited, in children
// order; there is no topmost-wins routing.
//
// Every walk iterates a snapshot of the live lists, so slots may add or
// remove panels while a dispatch is in flight. Panels added during the walk
// are reached by the next event.

// hitChildren appends to buf every child of p containing local.
func (p *Panel) hitChildren(local Point, buf []*Panel) []*Panel {
	for _, c := range p.children {
		if c.rect.Contains(local) {
			buf = append(buf, c)
		}
	}
	return buf
}

// dispatchPress delivers a press to every hit descendant, then emits p's
// own Pressed signal.
func (p *Panel) dispatchPress(local Point, ev Event) error {
	for _, c := range p.hitChildren(local, nil) {
		if err := c.dispatchPress(c.ToLocal(local), ev); err != nil {
			return err
		}
	}
	return p.Pressed.Emit(PointerEvent{Pos: local, Event: ev})
}

// dispatchRelease mirrors dispatchPress for button releases.
func (p *Panel) dispatchRelease(local Point, ev Event) error {
	for _, c := range p.hitChildren(local, nil) {
		if err := c.dispatchRelease(c.ToLocal(local), ev); err != nil {
			return err
		}
	}
	return p.Released.Emit(PointerEvent{Pos: local, Event: ev})
}

// dispatchMove delivers a move to every hit descendant, emits p's Moved
// signal and then diffs the hit set against the previous hover set:
// children newly under the pointer are entered, children no longer under
// it are exited.
func (p *Panel) dispatchMove(local Point, ev Event) error {
	hit := p.hitChildren(local, nil)
	for _, c := range hit {
		if err := c.dispatchMove(c.ToLocal(local), ev); err != nil {
			return err
		}
	}
	if err := p.Moved.Emit(PointerEvent{Pos: local, Event: ev}); err != nil {
		return err
	}

	prev := p.hovered
	// A slot may have detached some of the hit children.
	next := slices.DeleteFunc(hit, func(c *Panel) bool { return c.parent != p })
	var entering, leaving []*Panel
	for _, c := range next {
		if indexOf(prev, c) < 0 {
			entering = append(entering, c)
		}
	}
	for _, c := range prev {
		if indexOf(next, c) < 0 {
			leaving = append(leaving, c)
		}
	}

	// The hover set is only replaced once every notification went through.
	// A failed move keeps the old set, so the next move diffs against it
	// again and delivers the exits this one could not.
	for _, c := range entering {
		if err := c.enter(ev); err != nil {
			return err
		}
	}
	for _, c := range leaving {
		if err := c.exit(ev); err != nil {
			return err
		}
	}
	p.hovered = slices.DeleteFunc(next, func(c *Panel) bool { return c.parent != p })
	return nil
}

// enter emits Entered. Descendants are not entered: they only become
// hovered through their own move pass.
func (p *Panel) enter(ev Event) error {
	return p.Entered.Emit(ev)
}

// exit cascades the exit through every hovered descendant first, then emits
// p's Exited signal. Each child leaves the hover set as soon as its own exit
// succeeds, and the set is empty once Exited has been emitted, even if one
// of its slots failed.
func (p *Panel) exit(ev Event) error {
	for _, c := range slices.Clone(p.hovered) {
		if err := c.exit(ev); err != nil {
			return err
		}
		removePanel(&p.hovered, c)
	}
	err := p.Exited.Emit(ev)
	p.hovered = nil
	return err
}
