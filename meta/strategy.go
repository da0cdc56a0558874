package meta

// Strategy is the execution strategy for whole-string matching.
//
// Selection is automatic, based on the pattern's extracted literal set.
type Strategy int

const (
	// UseDFA runs the subset-construction DFA over the input.
	// The default for any pattern without a usable literal set.
	UseDFA Strategy = iota

	// UseLiteral answers with a single byte comparison.
	// Selected when the pattern's language is exactly one literal
	// (e.g. `hello` or `a\*b`): the DFA is still built and owned by
	// the engine, but match time never touches it.
	UseLiteral

	// UsePrefilteredDFA gates the DFA behind an Aho-Corasick scan.
	// Selected for exact literal alternations (e.g. `cat|dog|cow`):
	// a whole-string match implies one of the literals occurs in the
	// input, so if the automaton finds none the input is rejected
	// without running the DFA. Positives are always verified by the
	// DFA.
	UsePrefilteredDFA
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseDFA:
		return "UseDFA"
	case UseLiteral:
		return "UseLiteral"
	case UsePrefilteredDFA:
		return "UsePrefilteredDFA"
	default:
		return "Unknown"
	}
}
