package nfa

import (
	"fmt"

	"github.com/coregx/redfa/internal/graph"
	"github.com/coregx/redfa/syntax"
)

// Compile builds the Thompson NFA for a syntax tree with no state
// budget.
func Compile(ast *syntax.Node) (*NFA, error) {
	return CompileWithLimit(ast, 0)
}

// CompileWithLimit builds the Thompson NFA for a syntax tree.
// maxStates caps the state count (0 = unlimited); exceeding it returns
// graph.ErrCapacity. The arena is pre-sized by counting tree nodes, so
// with a sufficient budget construction cannot fail.
func CompileWithLimit(ast *syntax.Node, maxStates uint32) (*NFA, error) {
	states, _ := countResources(ast)

	g := graph.New(maxStates)
	g.Reserve(states)

	c := &compiler{g: g}
	frag, err := c.build(ast)
	if err != nil {
		return nil, err
	}

	return &NFA{
		g:        g,
		start:    frag.start,
		accept:   frag.accept,
		alphabet: collectAlphabet(ast),
	}, nil
}

// countResources returns the number of states and edges Thompson's
// construction will allocate for the tree. Per node:
// Literal/Empty 2 states 1 edge, Concat 0 states 1 edge,
// Union and Star 2 states 4 edges.
func countResources(n *syntax.Node) (states, edges int) {
	if n == nil {
		return 0, 0
	}
	switch n.Op {
	case syntax.OpLiteral, syntax.OpEmpty:
		return 2, 1
	case syntax.OpConcat:
		ls, le := countResources(n.Left)
		rs, re := countResources(n.Right)
		return ls + rs, le + re + 1
	case syntax.OpUnion:
		ls, le := countResources(n.Left)
		rs, re := countResources(n.Right)
		return ls + rs + 2, le + re + 4
	case syntax.OpStar:
		ls, le := countResources(n.Left)
		return ls + 2, le + 4
	default:
		return 0, 0
	}
}

// collectAlphabet returns the sorted distinct literal symbols of the
// tree.
func collectAlphabet(n *syntax.Node) []byte {
	var present [256]bool
	markSymbols(n, &present)

	var alphabet []byte
	for b := 0; b < 256; b++ {
		if present[b] {
			alphabet = append(alphabet, byte(b))
		}
	}
	return alphabet
}

func markSymbols(n *syntax.Node, present *[256]bool) {
	if n == nil {
		return
	}
	if n.Op == syntax.OpLiteral {
		present[n.Char] = true
		return
	}
	markSymbols(n.Left, present)
	markSymbols(n.Right, present)
}

// fragment is a partially built automaton piece with exactly one entry
// and one exit state. Its accept state has no outgoing edges until the
// fragment is embedded in a larger one ("open" invariant); embedding
// patches the accept with epsilon edges.
type fragment struct {
	start  graph.NodeID
	accept graph.NodeID
}

type compiler struct {
	g *graph.Graph
}

// build constructs the fragment for a subtree, committing its states
// and edges into the graph.
func (c *compiler) build(n *syntax.Node) (fragment, error) {
	switch n.Op {
	case syntax.OpLiteral:
		return c.buildLeaf(graph.ByteLabel(n.Char))
	case syntax.OpEmpty:
		return c.buildLeaf(graph.Epsilon)
	case syntax.OpConcat:
		return c.buildConcat(n)
	case syntax.OpUnion:
		return c.buildUnion(n)
	case syntax.OpStar:
		return c.buildStar(n)
	default:
		panic(fmt.Sprintf("nfa: unknown syntax op %d", n.Op))
	}
}

// buildLeaf allocates s0 -(label)-> s1 for a Literal or Empty node.
func (c *compiler) buildLeaf(label graph.Label) (fragment, error) {
	s0, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	s1, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	c.g.AddEdge(s0, label, s1)
	return fragment{start: s0, accept: s1}, nil
}

// buildConcat glues the left fragment's accept to the right fragment's
// start with an epsilon edge.
func (c *compiler) buildConcat(n *syntax.Node) (fragment, error) {
	fl, err := c.build(n.Left)
	if err != nil {
		return fragment{}, err
	}
	fr, err := c.build(n.Right)
	if err != nil {
		return fragment{}, err
	}
	c.patch(fl, fr.start)
	return fragment{start: fl.start, accept: fr.accept}, nil
}

// buildUnion allocates a new start forking into both branches and a new
// accept joining them.
func (c *compiler) buildUnion(n *syntax.Node) (fragment, error) {
	s0, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	s1, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	fl, err := c.build(n.Left)
	if err != nil {
		return fragment{}, err
	}
	fr, err := c.build(n.Right)
	if err != nil {
		return fragment{}, err
	}
	c.g.AddEpsilon(s0, fl.start)
	c.g.AddEpsilon(s0, fr.start)
	c.patch(fl, s1)
	c.patch(fr, s1)
	return fragment{start: s0, accept: s1}, nil
}

// buildStar allocates a new start and accept around the inner fragment,
// with epsilon edges for zero repetitions (start->accept), entering
// (start->inner), repeating (inner accept->inner start) and exiting
// (inner accept->accept).
func (c *compiler) buildStar(n *syntax.Node) (fragment, error) {
	s0, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	s1, err := c.g.AddNode()
	if err != nil {
		return fragment{}, err
	}
	fi, err := c.build(n.Left)
	if err != nil {
		return fragment{}, err
	}
	c.g.AddEpsilon(s0, fi.start)
	c.g.AddEpsilon(s0, s1)
	c.g.AddEpsilon(fi.accept, fi.start)
	c.g.AddEpsilon(fi.accept, s1)
	return fragment{start: s0, accept: s1}, nil
}

// patch embeds a fragment by adding an epsilon edge from its accept
// state to the given target, closing the fragment.
func (c *compiler) patch(f fragment, to graph.NodeID) {
	if deg := c.g.OutDegree(f.accept); deg != 0 {
		panic(fmt.Sprintf("nfa: fragment accept state %d already has %d outgoing edges", f.accept, deg))
	}
	c.g.AddEpsilon(f.accept, to)
}
