// Package literal extracts literal sequences from pattern syntax trees.
//
// A pattern built only from literals, concatenation and alternation
// denotes a finite set of strings. Extracting that set lets the engine
// pick cheaper strategies: a single literal needs only a byte compare,
// and a small alternation of literals supports a multi-literal
// prefilter in front of the DFA.
package literal

// Seq is a set of alternative literals extracted from a pattern.
//
// Exact means the set is the pattern's complete language: an input
// matches the pattern iff it equals one of the literals. An inexact
// Seq carries no literals and conveys only "not a finite literal set".
type Seq struct {
	lits  [][]byte
	exact bool
}

// Inexact returns the Seq for patterns that do not denote a finite
// literal set.
func Inexact() *Seq {
	return &Seq{}
}

// IsExact returns true if the literals are the pattern's complete
// language.
func (s *Seq) IsExact() bool {
	return s.exact
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// IsEmpty returns true if the Seq holds no literals.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// Get returns the i-th literal. The slice is owned by the Seq.
func (s *Seq) Get(i int) []byte {
	return s.lits[i]
}

// Literals returns all literals. The slices are owned by the Seq.
func (s *Seq) Literals() [][]byte {
	return s.lits
}

// MinLen returns the length of the shortest literal, or 0 for an empty
// Seq.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := len(s.lits[0])
	for _, l := range s.lits[1:] {
		if len(l) < min {
			min = len(l)
		}
	}
	return min
}
