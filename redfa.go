// Package redfa is a small regex engine that compiles a pattern into a
// deterministic finite automaton and tests whole strings against it.
//
// The pipeline is classic: the pattern is tokenized, parsed into a
// syntax tree, turned into a Thompson NFA, and determinized up front
// with subset construction. Matching is then a single pass over the
// input with no backtracking, giving O(n) match time for any pattern.
//
// Supported syntax: literal characters, concatenation, alternation
// '|', zero-or-more '*', grouping '(' ')', and '\' escaping the next
// character. Matching is whole-string only: the pattern must account
// for the entire input.
//
// Basic usage:
//
//	re, err := redfa.Compile("(a|b)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aabbabc") // true
//	re.MatchString("aab")     // false
//
// A compiled Regex is immutable and safe to use concurrently from
// multiple goroutines.
package redfa

import (
	"github.com/coregx/redfa/meta"
)

// Regex represents a compiled regular expression.
//
// It bundles the original pattern text with its compiled automaton and
// owns the automaton's storage for its lifetime.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern.
//
// Returns an error if the pattern is invalid (see package syntax for
// the error kinds) or if automaton construction exceeds the configured
// state budget.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom limits.
//
// Example:
//
//	config := redfa.DefaultConfig()
//	config.MaxStates = 100_000 // allow larger automata
//	re, err := redfa.CompileWithConfig("(a|b)*c", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a pattern and panics if it fails.
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("redfa: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// DefaultConfig returns the default compilation configuration.
// Customize it and pass to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether the byte slice b, in its entirety, matches the
// pattern. It never fails.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether the string s, in its entirety, matches
// the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatchString(s)
}

// String returns the source text used to compile the regular
// expression.
func (r *Regex) String() string {
	return r.pattern
}

// QuoteMeta returns a string that escapes all pattern metacharacters
// in the argument; the result is a pattern matching the literal text.
//
// Example:
//
//	escaped := redfa.QuoteMeta("a*b")
//	// escaped = `a\*b`
//	redfa.MustCompile(escaped).MatchString("a*b") // true
func QuoteMeta(s string) string {
	const special = `|*()\`

	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
