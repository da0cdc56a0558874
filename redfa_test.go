package redfa

import (
	"errors"
	"sync"
	"testing"

	"github.com/coregx/redfa/internal/graph"
	"github.com/coregx/redfa/syntax"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"empty pattern", "", false},
		{"alternation", "foo|bar", false},
		{"star", "(a|b)*c", false},
		{"escaped operators", `\(\)\|\*\\`, false},
		{"unclosed group", "(", true},
		{"dangling star", "*a", true},
		{"trailing escape", `a\`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil")
			}
		})
	}
}

func TestCompile_ErrorKinds(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"(", syntax.ErrUnclosedGroup},
		{"*a", syntax.ErrDanglingStar},
		{`a\`, syntax.ErrDanglingEscape},
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

func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("(")
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"", "", true},
		{"", "a", false},

		{"a*", "", true},
		{"a*", "a", true},
		{"a*", "aaaa", true},
		{"a*", "b", false},
		{"a*", "ab", false},

		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "ab", false},
		{"a|b", "", false},

		{"(a|b)*c", "aabbabc", true},
		{"(a|b)*c", "c", true},
		{"(a|b)*c", "aab", false},
		{"(a|b)*c", "", false},

		{`a\*b`, "a*b", true},
		{`a\*b`, "ab", false},
		{`a\*b`, "aab", false},

		{"hello", "hello", true},
		{"hello", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestMatch_Deterministic checks that repeated matching of the same
// input returns identical results: matching mutates nothing.
func TestMatch_Deterministic(t *testing.T) {
	re := MustCompile("(a|b)*c")
	for i := 0; i < 100; i++ {
		if !re.MatchString("aabbabc") {
			t.Fatalf("iteration %d: MatchString = false", i)
		}
		if re.MatchString("aab") {
			t.Fatalf("iteration %d: MatchString = true for non-match", i)
		}
	}
}

// TestCompileTwice_BehavioralEquivalence checks that two compilations
// of the same pattern accept the same language, regardless of internal
// state numbering.
func TestCompileTwice_BehavioralEquivalence(t *testing.T) {
	const pattern = "(a|ab)*b|c*"
	re1 := MustCompile(pattern)
	re2 := MustCompile(pattern)

	inputs := []string{"", "a", "b", "ab", "abb", "aab", "ababb", "c", "cc", "bc", "x"}
	for _, input := range inputs {
		if got1, got2 := re1.MatchString(input), re2.MatchString(input); got1 != got2 {
			t.Errorf("MatchString(%q): first compile = %v, second = %v", input, got1, got2)
		}
	}
}

func TestMatch_Concurrent(t *testing.T) {
	re := MustCompile("(a|b)*c")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if !re.MatchString("ababc") {
					t.Error("MatchString(\"ababc\") = false")
					return
				}
				if re.MatchString("abab") {
					t.Error("MatchString(\"abab\") = true")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestString(t *testing.T) {
	const pattern = "(a|b)*c"
	if got := MustCompile(pattern).String(); got != pattern {
		t.Errorf("String() = %q, want %q", got, pattern)
	}
}

func TestQuoteMeta(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "abc"},
		{"a*b", `a\*b`},
		{"(a|b)", `\(a\|b\)`},
		{`a\b`, `a\\b`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := QuoteMeta(tt.in)
			if got != tt.want {
				t.Errorf("QuoteMeta(%q) = %q, want %q", tt.in, got, tt.want)
			}

			// The quoted pattern matches exactly the original text.
			re := MustCompile(got)
			if !re.MatchString(tt.in) {
				t.Errorf("MustCompile(QuoteMeta(%q)) does not match the original", tt.in)
			}
		})
	}
}

func TestCompileWithConfig_CapacityError(t *testing.T) {
	config := DefaultConfig()
	config.MaxStates = 2

	_, err := CompileWithConfig("(a|b)*c", config)
	if !errors.Is(err, graph.ErrCapacity) {
		t.Errorf("CompileWithConfig error = %v, want graph.ErrCapacity", err)
	}
}
