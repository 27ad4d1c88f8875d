package regexp

import (
	"unicode"

	"github.com/samber/lo"

	"github.com/alvesmarcos/rslex/internal/buffer"
)

// TokenStream turns a character stream into regexp tokens, with capacity
// for one token of lookahead. A stream is built once per expression; the
// terminator set tells it which characters end the expression when it is
// embedded in a larger grammar (e.g. a comma-separated rule list).
type TokenStream struct {
	buf  *buffer.LookaheadBuffer
	term []rune
	peek *Token
}

func NewTokenStream(buf *buffer.LookaheadBuffer, term []rune) *TokenStream {
	return &TokenStream{buf: buf, term: term}
}

// Next returns the next token. A previously unread token is returned first.
func (ts *TokenStream) Next() (Token, error) {
	if ts.peek != nil {
		tok := *ts.peek
		ts.peek = nil
		return tok, nil
	}
	return ts.scan()
}

// Unread makes tok the next token Next yields. At most one token may be
// pending; unreading a second one before consuming the first replaces it
// and must not happen.
func (ts *TokenStream) Unread(tok Token) {
	ts.peek = &tok
}

func (ts *TokenStream) scan() (Token, error) {
	ts.buf.SkipWhitespace()
	c, ok := ts.buf.NextChar()
	if !ok {
		return Token{Kind: TokenEOF}, nil
	}

	switch c {
	case '[':
		return Token{Kind: TokenLBracket}, nil
	case ']':
		return Token{Kind: TokenRBracket}, nil
	case '(':
		return Token{Kind: TokenLParen}, nil
	case ')':
		return Token{Kind: TokenRParen}, nil
	case '*':
		return Token{Kind: TokenStar}, nil
	case '+':
		return Token{Kind: TokenPlus}, nil
	case '|':
		return Token{Kind: TokenBar}, nil
	case '-':
		return Token{Kind: TokenDash}, nil
	case '\'', '"':
		text, err := ts.scanString(c)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenString, Text: text}, nil
	}

	switch {
	case unicode.IsLetter(c):
		return Token{Kind: TokenIdentifier, Text: ts.scanIdentifier(c)}, nil
	case lo.Contains(ts.term, c):
		return Token{Kind: TokenEnd}, nil
	default:
		return Token{Kind: TokenInvalid, Char: c}, nil
	}
}

// scanString consumes up to the next occurrence of delim. There is no
// escape mechanism: a quote of the other kind is ordinary text, a quote of
// the same kind always closes the literal.
func (ts *TokenStream) scanString(delim rune) (string, error) {
	var text []rune
	for {
		c, ok := ts.buf.NextChar()
		if !ok {
			return "", newLexicalError("unexpected end of input: expected closing %q", delim)
		}
		if c == delim {
			return string(text), nil
		}
		text = append(text, c)
	}
}

func (ts *TokenStream) scanIdentifier(first rune) string {
	text := []rune{first}
	for {
		c, ok := ts.buf.NextChar()
		if !ok {
			return string(text)
		}
		if !isIdentChar(c) {
			ts.buf.ReturnChar(c)
			return string(text)
		}
		text = append(text, c)
	}
}

func isIdentChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}
