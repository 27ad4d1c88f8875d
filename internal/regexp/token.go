package regexp

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenStar
	TokenPlus
	TokenBar
	TokenDash
	TokenIdentifier
	TokenString
	TokenEnd
	TokenInvalid
)

// Token is one element of the scanner's output alphabet. Text carries the
// content of identifiers and string literals, Char the offending character
// of a TokenInvalid token. Tokens are plain values; equality is structural.
type Token struct {
	Kind TokenKind
	Text string
	Char rune
}

var tokenKindNames = map[TokenKind]string{
	TokenEOF:      "end of input",
	TokenLBracket: "'['",
	TokenRBracket: "']'",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
	TokenStar:     "'*'",
	TokenPlus:     "'+'",
	TokenBar:      "'|'",
	TokenDash:     "'-'",
	TokenEnd:      "terminator",
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier:
		return "identifier " + strconv.Quote(t.Text)
	case TokenString:
		return "string " + strconv.Quote(t.Text)
	case TokenInvalid:
		return fmt.Sprintf("character %q", t.Char)
	default:
		if name, ok := tokenKindNames[t.Kind]; ok {
			return name
		}
		return fmt.Sprintf("token(%d)", int(t.Kind))
	}
}
