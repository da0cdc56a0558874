package meta

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/literal"
	"github.com/coregx/redfa/nfa"
	"github.com/coregx/redfa/syntax"
)

// Compile compiles a pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig runs the full pipeline: tokenize, parse, extract
// literals, build the Thompson NFA, determinize, select a strategy.
//
// It short-circuits on the first failure and returns that error
// unchanged, so callers can test the originating kind with errors.Is
// (syntax.ErrDanglingEscape, syntax.ErrUnclosedGroup, ...,
// graph.ErrCapacity).
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	tokens, err := syntax.Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	ast, err := syntax.Parse(tokens)
	if err != nil {
		return nil, err
	}

	n, err := nfa.CompileWithLimit(ast, config.MaxStates)
	if err != nil {
		return nil, err
	}
	d, err := dfa.DeterminizeWithConfig(n, dfa.Config{
		MaxStates:            config.MaxStates,
		DeterminizationLimit: config.DeterminizationLimit,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		pattern:  pattern,
		strategy: UseDFA,
		dfa:      d,
	}
	selectStrategy(engine, literal.Extract(ast, config.MaxLiterals), config)
	return engine, nil
}

// selectStrategy picks the cheapest strategy the literal set supports.
// Prefilter construction failure is not a compile error: the engine
// just falls back to the plain DFA.
func selectStrategy(e *Engine, lits *literal.Seq, config Config) {
	if !lits.IsExact() {
		return
	}

	if lits.Len() == 1 {
		e.strategy = UseLiteral
		e.lit = lits.Get(0)
		return
	}

	if !config.EnablePrefilter || lits.MinLen() < config.MinLiteralLen {
		return
	}
	builder := ahocorasick.NewBuilder()
	for i := 0; i < lits.Len(); i++ {
		builder.AddPattern(lits.Get(i))
	}
	auto, err := builder.Build()
	if err != nil {
		return
	}
	e.strategy = UsePrefilteredDFA
	e.prefilter = auto
}
