package panel

// InjectPress dispatches a synthetic left-button press at (x, y), in root
// coordinates.
func (r *Root) InjectPress(x, y int) error {
	return r.Dispatch(Event{Kind: EventPress, Pos: Point{x, y}, Button: MouseButtonLeft})
}

// InjectRelease dispatches a synthetic left-button release at (x, y).
func (r *Root) InjectRelease(x, y int) error {
	return r.Dispatch(Event{Kind: EventRelease, Pos: Point{x, y}, Button: MouseButtonLeft})
}

// InjectMove dispatches a synthetic pointer move to (x, y).
func (r *Root) InjectMove(x, y int) error {
	return r.Dispatch(Event{Kind: EventMove, Pos: Point{x, y}})
}

// InjectClick is a convenience that moves to (x, y), presses and releases
// there.
func (r *Root) InjectClick(x, y int) error {
	if err := r.InjectMove(x, y); err != nil {
		return err
	}
	if err := r.InjectPress(x, y); err != nil {
		return err
	}
	return r.InjectRelease(x, y)
}

// InjectDrag dispatches a press at (fromX, fromY), steps-1 linearly
// interpolated moves, a final move to (toX, toY) and a release there.
// Minimum steps is 1 (press, one move, release).
func (r *Root) InjectDrag(fromX, fromY, toX, toY, steps int) error {
	if steps < 1 {
		steps = 1
	}
	if err := r.InjectMove(fromX, fromY); err != nil {
		return err
	}
	if err := r.InjectPress(fromX, fromY); err != nil {
		return err
	}
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/steps
		y := fromY + (toY-fromY)*i/steps
		if err := r.InjectMove(x, y); err != nil {
			return err
		}
	}
	return r.InjectRelease(toX, toY)
}
