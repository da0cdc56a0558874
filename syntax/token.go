package syntax

import "fmt"

// TokenKind identifies the type of a pattern token.
type TokenKind uint8

const (
	// TokenLiteral is an ordinary character.
	TokenLiteral TokenKind = iota

	// TokenEscaped is a character forced literal by a preceding escape.
	// The parser treats it exactly like TokenLiteral; keeping the kind
	// distinct preserves where escapes appeared for diagnostics.
	TokenEscaped

	// TokenUnion is the alternation operator '|'.
	TokenUnion

	// TokenStar is the zero-or-more operator '*'.
	TokenStar

	// TokenLParen is a group opener '('.
	TokenLParen

	// TokenRParen is a group closer ')'.
	TokenRParen

	// TokenEOF terminates every token sequence, so the parser never
	// has to special-case input exhaustion.
	TokenEOF
)

// String returns a human-readable representation of the TokenKind.
func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "Literal"
	case TokenEscaped:
		return "Escaped"
	case TokenUnion:
		return "Union"
	case TokenStar:
		return "Star"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenEOF:
		return "EOF"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Token is a single pattern token.
type Token struct {
	// Kind is the token type.
	Kind TokenKind

	// Char is the character payload for Literal and Escaped tokens.
	Char byte

	// Pos is the byte offset of the token in the pattern. For Escaped
	// tokens it is the offset of the escape character.
	Pos int
}

// isLiteral returns true for token kinds the parser treats as a
// literal character.
func (t Token) isLiteral() bool {
	return t.Kind == TokenLiteral || t.Kind == TokenEscaped
}

// String returns a human-readable representation of the token.
func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral, TokenEscaped:
		return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Char, t.Pos)
	default:
		return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
	}
}
