// Package graph provides the labeled directed multigraph that backs
// automaton construction.
//
// Nodes are addressed by dense integer ids assigned in creation order.
// Each node owns an ordered list of outgoing edges, giving O(1) id-based
// lookup and O(out-degree) edge enumeration. The graph grows on demand;
// an optional node budget caps growth and reports ErrCapacity when
// exceeded, which builders surface as automaton-too-large.
//
// The intended lifecycle is single-writer, then frozen: exactly one
// builder mutates the graph during construction, after which it is only
// read. Nothing here locks; the discipline is the caller's.
package graph

import "errors"

// ErrCapacity indicates that automaton construction exceeded the
// configured node budget.
var ErrCapacity = errors.New("graph: node capacity exceeded")

// NodeID uniquely identifies a node in the graph.
type NodeID uint32

// InvalidNode represents an invalid/uninitialized node ID.
const InvalidNode NodeID = 0xFFFFFFFF

// Label is an edge label: either a single input symbol or Epsilon.
type Label int16

// Epsilon labels an edge that consumes no input symbol.
const Epsilon Label = -1

// ByteLabel returns the label for the input symbol b.
func ByteLabel(b byte) Label {
	return Label(b)
}

// IsEpsilon returns true if the label consumes no input.
func (l Label) IsEpsilon() bool {
	return l == Epsilon
}

// Byte returns the input symbol the label carries.
// Only meaningful for non-epsilon labels.
func (l Label) Byte() byte {
	return byte(l)
}

// Edge is an outgoing edge: a label and a target node.
type Edge struct {
	Label Label
	To    NodeID
}

// Graph is a labeled directed multigraph stored as an adjacency list.
//
// All methods taking a NodeID assume it was returned by AddNode on the
// same graph; passing an id from elsewhere panics on the slice index.
type Graph struct {
	edges    [][]Edge
	numEdges int

	// maxNodes caps the number of nodes; 0 means unlimited.
	maxNodes uint32
}

// New creates an empty graph. maxNodes caps the node count
// (0 = unlimited).
func New(maxNodes uint32) *Graph {
	return &Graph{
		maxNodes: maxNodes,
	}
}

// Reserve pre-allocates room for n additional nodes.
// Builders that can count their states up front call this once to avoid
// incremental growth during construction.
func (g *Graph) Reserve(n int) {
	if n <= 0 {
		return
	}
	edges := make([][]Edge, len(g.edges), len(g.edges)+n)
	copy(edges, g.edges)
	g.edges = edges
}

// AddNode creates a new node and returns its id.
// Returns ErrCapacity if the node budget is exhausted.
func (g *Graph) AddNode() (NodeID, error) {
	if g.maxNodes != 0 && uint32(len(g.edges)) >= g.maxNodes {
		return InvalidNode, ErrCapacity
	}
	id := NodeID(len(g.edges))
	g.edges = append(g.edges, nil)
	return id, nil
}

// AddEdge adds an edge from one node to another with the given label.
// Parallel edges are permitted.
func (g *Graph) AddEdge(from NodeID, label Label, to NodeID) {
	g.edges[from] = append(g.edges[from], Edge{Label: label, To: to})
	g.numEdges++
}

// AddEpsilon adds an epsilon-labeled edge between two nodes.
func (g *Graph) AddEpsilon(from, to NodeID) {
	g.AddEdge(from, Epsilon, to)
}

// Edges returns the outgoing edges of a node, in insertion order.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Edges(from NodeID) []Edge {
	return g.edges[from]
}

// HasEdge returns true if an edge with the given label exists between
// the two nodes.
func (g *Graph) HasEdge(from NodeID, label Label, to NodeID) bool {
	for _, e := range g.edges[from] {
		if e.Label == label && e.To == to {
			return true
		}
	}
	return false
}

// OutDegree returns the number of outgoing edges of a node.
func (g *Graph) OutDegree(from NodeID) int {
	return len(g.edges[from])
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.edges)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	return g.numEdges
}
