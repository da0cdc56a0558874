package literal

import (
	"github.com/coregx/redfa/syntax"
)

// Extract computes the exact literal set of a syntax tree.
//
// maxLiterals caps the set size: alternations and concatenation
// cross-products beyond the cap, and any star, yield an inexact Seq.
// The empty pattern extracts as the single empty literal.
func Extract(n *syntax.Node, maxLiterals int) *Seq {
	lits, ok := extract(n, maxLiterals)
	if !ok {
		return Inexact()
	}
	return &Seq{lits: lits, exact: true}
}

func extract(n *syntax.Node, max int) ([][]byte, bool) {
	switch n.Op {
	case syntax.OpEmpty:
		return [][]byte{nil}, true

	case syntax.OpLiteral:
		return [][]byte{{n.Char}}, true

	case syntax.OpUnion:
		left, ok := extract(n.Left, max)
		if !ok {
			return nil, false
		}
		right, ok := extract(n.Right, max)
		if !ok {
			return nil, false
		}
		if len(left)+len(right) > max {
			return nil, false
		}
		return append(left, right...), true

	case syntax.OpConcat:
		left, ok := extract(n.Left, max)
		if !ok {
			return nil, false
		}
		right, ok := extract(n.Right, max)
		if !ok {
			return nil, false
		}
		// Cross product: every left literal followed by every right one.
		if len(left)*len(right) > max {
			return nil, false
		}
		product := make([][]byte, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				lit := make([]byte, 0, len(l)+len(r))
				lit = append(lit, l...)
				lit = append(lit, r...)
				product = append(product, lit)
			}
		}
		return product, true

	case syntax.OpStar:
		// Infinite language.
		return nil, false

	default:
		return nil, false
	}
}
