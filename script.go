package panel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Steps  int    `json:"steps,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a recorded sequence of pointer actions that can be replayed
// against a Root, for automated interaction tests.
//
//	{"steps": [
//	  {"action": "move", "x": 20, "y": 20},
//	  {"action": "click", "x": 20, "y": 20},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "steps": 5}
//	]}
type Script struct {
	steps  []scriptStep
	cursor int
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "drag":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: script.Steps}, nil
}

// Done reports whether every step has been replayed.
func (s *Script) Done() bool {
	return s.cursor >= len(s.steps)
}

// Len returns the number of steps in the script.
func (s *Script) Len() int {
	return len(s.steps)
}

// Step replays the next action against r. It is a no-op once the script is
// done.
func (s *Script) Step(r *Root) error {
	if s.Done() {
		return nil
	}
	st := s.steps[s.cursor]
	s.cursor++

	var err error
	switch st.Action {
	case "move":
		err = r.InjectMove(st.X, st.Y)
	case "press":
		err = r.InjectPress(st.X, st.Y)
	case "release":
		err = r.InjectRelease(st.X, st.Y)
	case "click":
		err = r.InjectClick(st.X, st.Y)
	case "drag":
		err = r.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Steps)
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", s.cursor-1, st.Action, err)
	}
	return nil
}

// Run replays every remaining step against r, stopping at the first error.
func (s *Script) Run(r *Root) error {
	for !s.Done() {
		if err := s.Step(r); err != nil {
			return err
		}
	}
	return nil
}

// Reset rewinds the script to its first step.
func (s *Script) Reset() {
	s.cursor = 0
}
