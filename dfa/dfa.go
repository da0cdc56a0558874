// Package dfa implements subset construction and DFA simulation.
//
// Determinize converts a Thompson NFA into an equivalent DFA up front:
// each DFA state stands for the epsilon-closure of a set of NFA states,
// and sets are deduplicated so that two subset computations reaching
// the same NFA states collapse to one DFA state. The resulting
// automaton has no epsilon edges and at most one transition per symbol
// per state, so matching is a single pass over the input.
package dfa

import (
	"github.com/coregx/redfa/internal/graph"
)

// DFA is a deterministic finite automaton.
//
// It is immutable once built and safe for concurrent use by multiple
// readers.
type DFA struct {
	g      *graph.Graph
	start  graph.NodeID
	accept []bool
}

// Start returns the start state. It is always the first state built,
// the epsilon-closure of the NFA start state.
func (d *DFA) Start() graph.NodeID {
	return d.start
}

// States returns the number of DFA states.
func (d *DFA) States() int {
	return d.g.NumNodes()
}

// IsAccept returns true if the given state is accepting.
func (d *DFA) IsAccept(id graph.NodeID) bool {
	return d.accept[id]
}

// Graph returns the transition graph backing the DFA.
// Readers must not mutate it.
func (d *DFA) Graph() *graph.Graph {
	return d.g
}

// next returns the target of the transition on symbol b, or
// (InvalidNode, false) if the state has none.
func (d *DFA) next(from graph.NodeID, b byte) (graph.NodeID, bool) {
	label := graph.ByteLabel(b)
	for _, e := range d.g.Edges(from) {
		if e.Label == label {
			return e.To, true
		}
	}
	return graph.InvalidNode, false
}

// Matches simulates the DFA over the input and reports whether the
// whole input is accepted.
//
// Each input symbol consumes exactly one transition; a missing
// transition rejects immediately without scanning the remaining input.
// A symbol never seen during construction simply has no transition and
// is not an error: Matches is total.
func (d *DFA) Matches(input []byte) bool {
	cur := d.start
	for _, b := range input {
		to, ok := d.next(cur, b)
		if !ok {
			return false
		}
		cur = to
	}
	return d.accept[cur]
}

// MatchesString is like Matches for a string input.
func (d *DFA) MatchesString(input string) bool {
	cur := d.start
	for i := 0; i < len(input); i++ {
		to, ok := d.next(cur, input[i])
		if !ok {
			return false
		}
		cur = to
	}
	return d.accept[cur]
}
