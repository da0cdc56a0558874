package syntax

// EscapeChar is the escape character: it forces the next pattern
// character to be treated as a literal.
const EscapeChar = '\\'

// Tokenize scans a pattern left to right into its token sequence.
//
// The four operator characters '|', '*', '(' and ')' become operator
// tokens; an escape character consumes the following character and
// emits it as an Escaped literal; every other character becomes a
// Literal token. The sequence always ends with a TokenEOF.
//
// Tokenize is a pure function of the pattern. The only failure is a
// trailing escape with nothing to consume, reported as
// ErrDanglingEscape at the escape's position.
func Tokenize(pattern string) ([]Token, error) {
	// +1 for the EOF token; escapes only shrink the count.
	tokens := make([]Token, 0, len(pattern)+1)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '|':
			tokens = append(tokens, Token{Kind: TokenUnion, Pos: i})
		case '*':
			tokens = append(tokens, Token{Kind: TokenStar, Pos: i})
		case '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Pos: i})
		case ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Pos: i})
		case EscapeChar:
			if i+1 >= len(pattern) {
				return nil, &Error{Pos: i, Err: ErrDanglingEscape}
			}
			tokens = append(tokens, Token{Kind: TokenEscaped, Char: pattern[i+1], Pos: i})
			i++
		default:
			tokens = append(tokens, Token{Kind: TokenLiteral, Char: c, Pos: i})
		}
	}

	tokens = append(tokens, Token{Kind: TokenEOF, Pos: len(pattern)})
	return tokens, nil
}
