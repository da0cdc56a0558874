// Package meta implements the engine orchestrator: it runs the full
// compilation pipeline (tokenize, parse, literal extraction, Thompson
// NFA, subset-construction DFA) and selects the cheapest matching
// strategy for the compiled pattern.
//
// The engine's single operation is whole-string IsMatch. Compilation is
// fallible; matching never is.
package meta

// Config controls compilation limits and strategy selection.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // always go straight to the DFA
//	engine, err := meta.CompileWithConfig("(a|b)*c", config)
type Config struct {
	// EnablePrefilter enables the multi-literal prefilter for
	// alternation-of-literals patterns.
	// Default: true
	EnablePrefilter bool

	// MaxStates caps the state count of each constructed automaton
	// (NFA and DFA separately; 0 = unlimited). Subset construction is
	// worst-case exponential, so this is the backstop against
	// pathological patterns. Exceeding it fails compilation with
	// graph.ErrCapacity.
	// Default: 10000
	MaxStates uint32

	// DeterminizationLimit caps the number of NFA states per DFA
	// state (0 = unlimited).
	// Default: 1000
	DeterminizationLimit int

	// MaxLiterals caps the number of literals extracted from a
	// pattern; larger literal sets are treated as inexact.
	// Default: 64
	MaxLiterals int

	// MinLiteralLen is the minimum length of the shortest extracted
	// literal for the prefilter to be worth building. A one-byte
	// literal occurs in almost any input, making the gate useless.
	// Default: 2
	MinLiteralLen int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:      true,
		MaxStates:            10_000,
		DeterminizationLimit: 1_000,
		MaxLiterals:          64,
		MinLiteralLen:        2,
	}
}
