package meta

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/redfa/dfa"
)

// Engine is a compiled pattern ready for whole-string matching.
//
// An Engine is immutable after Compile returns and safe for concurrent
// use from multiple goroutines.
type Engine struct {
	pattern  string
	strategy Strategy

	// dfa is always built, whatever the strategy; it is the engine's
	// ground truth.
	dfa *dfa.DFA

	// lit is the pattern's single literal for UseLiteral.
	lit []byte

	// prefilter gates the DFA for UsePrefilteredDFA; nil otherwise.
	prefilter *ahocorasick.Automaton
}

// Pattern returns the source pattern the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Strategy returns the selected execution strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// DFA returns the engine's deterministic automaton.
func (e *Engine) DFA() *dfa.DFA {
	return e.dfa
}

// IsMatch reports whether the whole input matches the pattern.
// It is total: no input can make it fail.
func (e *Engine) IsMatch(input []byte) bool {
	switch e.strategy {
	case UseLiteral:
		return bytes.Equal(input, e.lit)
	case UsePrefilteredDFA:
		// No literal occurs anywhere in the input, so the whole input
		// cannot equal one of them.
		if !e.prefilter.IsMatch(input) {
			return false
		}
		return e.dfa.Matches(input)
	default:
		return e.dfa.Matches(input)
	}
}

// IsMatchString is like IsMatch for a string input.
func (e *Engine) IsMatchString(input string) bool {
	switch e.strategy {
	case UseLiteral:
		return input == string(e.lit)
	default:
		return e.IsMatch([]byte(input))
	}
}
