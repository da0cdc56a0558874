// Package nfa compiles a pattern syntax tree into a Thompson NFA.
//
// Construction is bottom-up over the tree: each node yields a fragment
// with exactly one start and one accept state, and fragments compose by
// gluing accept-to-start with epsilon edges. States and edges live in a
// graph arena owned by the NFA; the arena is sized up front by counting
// the tree's nodes, so construction fails only if a configured state
// budget is exceeded.
package nfa

import (
	"github.com/coregx/redfa/internal/graph"
)

// NFA is a compiled Thompson NFA.
//
// It has one designated start state and one designated accept state;
// the roles are recorded here rather than flagged on the states, since
// fragments compose by repurposing each other's accept states.
type NFA struct {
	g        *graph.Graph
	start    graph.NodeID
	accept   graph.NodeID
	alphabet []byte
}

// Graph returns the state graph backing the NFA.
// The graph is frozen once Compile returns; readers must not mutate it.
func (n *NFA) Graph() *graph.Graph {
	return n.g
}

// Start returns the designated start state.
func (n *NFA) Start() graph.NodeID {
	return n.start
}

// Accept returns the designated accept state.
func (n *NFA) Accept() graph.NodeID {
	return n.accept
}

// States returns the total number of NFA states.
func (n *NFA) States() int {
	return n.g.NumNodes()
}

// Alphabet returns the sorted distinct input symbols appearing in the
// pattern. Subset construction only needs to consider these: any other
// symbol has no transition anywhere in the NFA.
// The slice is owned by the NFA and must not be modified.
func (n *NFA) Alphabet() []byte {
	return n.alphabet
}
