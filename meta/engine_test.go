package meta

import (
	"errors"
	"testing"

	"github.com/coregx/redfa/internal/graph"
	"github.com/coregx/redfa/syntax"
)

func TestCompile_StrategySelection(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    Strategy
	}{
		{"single literal", "hello", UseLiteral},
		{"escaped literal", `a\*b`, UseLiteral},
		{"empty pattern", "", UseLiteral},
		{"literal alternation", "cat|dog|cow", UsePrefilteredDFA},
		{"distributed literals", "(ab|cd)(ef|gh)", UsePrefilteredDFA},
		{"star pattern", "a*", UseDFA},
		{"group with star", "(a|b)*c", UseDFA},
		// One-byte alternatives make the prefilter gate useless.
		{"short literal alternation", "a|b", UseDFA},
		// An empty alternative matches everything through the gate.
		{"empty alternative", "ab|", UseDFA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.pattern, err)
			}
			if got := engine.Strategy(); got != tt.want {
				t.Errorf("Strategy() = %v, want %v", got, tt.want)
			}
			if engine.DFA() == nil {
				t.Error("DFA() = nil; the DFA is built for every strategy")
			}
			if engine.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", engine.Pattern(), tt.pattern)
			}
		})
	}
}

func TestCompile_PrefilterDisabled(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false

	engine, err := CompileWithConfig("cat|dog|cow", config)
	if err != nil {
		t.Fatalf("CompileWithConfig error = %v", err)
	}
	if got := engine.Strategy(); got != UseDFA {
		t.Errorf("Strategy() = %v, want UseDFA", got)
	}
}

// TestIsMatch_StrategyParity runs the same inputs through every
// strategy that can serve a pattern; the answers must be identical.
func TestIsMatch_StrategyParity(t *testing.T) {
	dfaOnly := DefaultConfig()
	dfaOnly.EnablePrefilter = false

	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"cat|dog|cow", "cat", true},
		{"cat|dog|cow", "cow", true},
		{"cat|dog|cow", "cats", false},
		{"cat|dog|cow", "ca", false},
		{"cat|dog|cow", "", false},
		{"cat|dog|cow", "catdog", false},
		{"hello", "hello", true},
		{"hello", "hell", false},
		{"hello", "", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			fast, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile error = %v", err)
			}
			plain, err := CompileWithConfig(tt.pattern, dfaOnly)
			if err != nil {
				t.Fatalf("CompileWithConfig error = %v", err)
			}

			if got := fast.IsMatch([]byte(tt.input)); got != tt.want {
				t.Errorf("%v IsMatch(%q) = %v, want %v", fast.Strategy(), tt.input, got, tt.want)
			}
			if got := plain.IsMatch([]byte(tt.input)); got != tt.want {
				t.Errorf("%v IsMatch(%q) = %v, want %v", plain.Strategy(), tt.input, got, tt.want)
			}
			if got := fast.IsMatchString(tt.input); got != tt.want {
				t.Errorf("IsMatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompile_ErrorKindsPropagate(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{`a\`, syntax.ErrDanglingEscape},
		{"(", syntax.ErrUnclosedGroup},
		{"*a", syntax.ErrDanglingStar},
		{"a)", syntax.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestCompile_CapacityError(t *testing.T) {
	config := DefaultConfig()
	config.MaxStates = 3

	_, err := CompileWithConfig("(a|b)*c", config)
	if !errors.Is(err, graph.ErrCapacity) {
		t.Errorf("CompileWithConfig error = %v, want graph.ErrCapacity", err)
	}
}

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     string
	}{
		{UseDFA, "UseDFA"},
		{UseLiteral, "UseLiteral"},
		{UsePrefilteredDFA, "UsePrefilteredDFA"},
		{Strategy(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.strategy.String(); got != tt.want {
			t.Errorf("Strategy(%d).String() = %q, want %q", tt.strategy, got, tt.want)
		}
	}
}
