package panel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidReparenting is returned when attaching a panel that already
	// has a parent. Detach it first with RemoveChild or RemoveFromParent.
	ErrInvalidReparenting = errors.New("panel: panel already has a parent")

	// ErrNotAChild is returned by RemoveChild for a panel that is not a
	// direct child of the receiver.
	ErrNotAChild = errors.New("panel: not a child of this panel")

	// ErrNoCanvas is returned by Canvas when the parent chain does not end
	// in a Root.
	ErrNoCanvas = errors.New("panel: no canvas available")

	// ErrRootAttach is returned when attempting to attach a Root's panel
	// under another panel.
	ErrRootAttach = errors.New("panel: a root panel cannot be attached")

	// ErrCycle is returned when attaching a panel under itself or under one
	// of its own descendants.
	ErrCycle = errors.New("panel: adding child would create a cycle")

	// ErrNilPanel is returned when a nil panel is passed to a tree operation.
	ErrNilPanel = errors.New("panel: nil panel")
)

// ObserverError wraps an error returned by a slot connected to a Signal.
type ObserverError struct {
	Signal string // signal name, e.g. "pressed"
	Panel  string // name of the panel owning the signal, if any
	Err    error
}

func (e *ObserverError) Error() string {
	if e.Panel == "" {
		return fmt.Sprintf("panel: %s observer: %v", e.Signal, e.Err)
	}
	return fmt.Sprintf("panel: %s observer on %q: %v", e.Signal, e.Panel, e.Err)
}

func (e *ObserverError) Unwrap() error {
	return e.Err
}
