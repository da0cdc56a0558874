package syntax

import "fmt"

// Op identifies the kind of a syntax tree node.
type Op uint8

const (
	// OpEmpty matches only the empty string. Produced for empty
	// alternatives like "a|" and empty groups "()".
	OpEmpty Op = iota

	// OpLiteral matches a single character, held in Node.Char.
	OpLiteral

	// OpConcat matches Left followed by Right.
	OpConcat

	// OpUnion matches Left or Right.
	OpUnion

	// OpStar matches zero or more repetitions of Left.
	OpStar
)

// String returns a human-readable representation of the Op.
func (op Op) String() string {
	switch op {
	case OpEmpty:
		return "Empty"
	case OpLiteral:
		return "Literal"
	case OpConcat:
		return "Concat"
	case OpUnion:
		return "Union"
	case OpStar:
		return "Star"
	default:
		return fmt.Sprintf("Unknown(%d)", op)
	}
}

// Node is a node of the pattern syntax tree.
//
// Concat and Union are binary (Left, Right); Star is unary (Left);
// Literal carries its character in Char; Empty has no payload. Each
// node exclusively owns its children and the tree is acyclic.
type Node struct {
	Op    Op
	Char  byte
	Left  *Node
	Right *Node
}

// String returns a parenthesized debug form of the subtree.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Op {
	case OpEmpty:
		return "ε"
	case OpLiteral:
		return fmt.Sprintf("%q", n.Char)
	case OpConcat:
		return fmt.Sprintf("(%s . %s)", n.Left, n.Right)
	case OpUnion:
		return fmt.Sprintf("(%s | %s)", n.Left, n.Right)
	case OpStar:
		return fmt.Sprintf("(%s)*", n.Left)
	default:
		return fmt.Sprintf("<op %d>", n.Op)
	}
}
