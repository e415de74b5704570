package panel

// Paint draws p onto s: first its own OnPaint hook, then every visible
// child onto the sub-region of s matching the child's rectangle. Invisible
// children are skipped together with their subtrees.
func (p *Panel) Paint(s Surface) {
	if p.OnPaint != nil {
		p.OnPaint(p, s)
	}
	for _, c := range p.children {
		if c.Visible {
			c.Paint(s.SubSurface(c.rect))
		}
	}
}

// Canvas returns the region of the root surface this panel paints onto.
// It fails with ErrNoCanvas when the parent chain does not end in a Root.
func (p *Panel) Canvas() (Surface, error) {
	if p.root != nil {
		return p.root.surface, nil
	}
	if p.parent == nil {
		return nil, ErrNoCanvas
	}
	s, err := p.parent.Canvas()
	if err != nil {
		return nil, err
	}
	return s.SubSurface(p.rect), nil
}

// Repaint redraws p and its subtree in place on its canvas.
func (p *Panel) Repaint() error {
	s, err := p.Canvas()
	if err != nil {
		return err
	}
	p.Paint(s)
	return nil
}
