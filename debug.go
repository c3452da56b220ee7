package unveil

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// debugLog logs per-frame engine counts at debug level.
func (s *Scene) debugLog() {
	s.logger.Debug("frame",
		"n", s.frame,
		"clock", fmt.Sprintf("%.3f", s.clock),
		"observers", s.observers.count(),
		"reveals", len(s.reveals),
		"loops", len(s.loops),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("unveil debug: %s on disposed node %q", op, n.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		log.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}
