package panel

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut receives warnings from panel operations, which have no Root to
// ask for its writer. Set together with Root.SetDebugOutput.
var debugOut io.Writer = os.Stderr

// debugLog prints the duration of one dispatch or render pass.
func (r *Root) debugLog(op string, d time.Duration) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(r.debugOut, "[panel] %s: %v | panels: %d\n", op, d, countPanels(r.Panel))
}

func (r *Root) debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.debugOut, "[panel] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed panel
// is used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(p *Panel, op string) {
	if p.disposed {
		panic(fmt.Sprintf("panel debug: %s on disposed panel %q", op, p.Name))
	}
}

// Deep nesting makes every dispatch recurse through each level.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(p *Panel) {
	depth := 0
	for n := p; n != nil; n = n.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[panel] warning: panel %q is nested %d levels deep (limit %d)\n",
			p.Name, depth, debugMaxTreeDepth)
	}
}

// Every child of a panel on the pointer path is hit-tested per event.
const debugMaxChildCount = 1000

func debugCheckChildCount(p *Panel) {
	if len(p.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[panel] warning: panel %q routes hit tests through %d children (limit %d)\n",
			p.Name, len(p.children), debugMaxChildCount)
	}
}

// countPanels returns the number of panels in p's subtree, p included.
func countPanels(p *Panel) int {
	n := 0
	p.Walk(func(*Panel) bool {
		n++
		return true
	})
	return n
}
