package regexp

import (
	"log"
	"os"
	"strconv"

	"github.com/k0kubun/pp"

	"github.com/alvesmarcos/rslex/internal/buffer"
)

// Grammar:
//
//	regexp := union
//	union  := concat ('|' union)?
//	concat := factor concat?
//	factor := '(' regexp ')' closure?
//	        | '[' class ']' closure?
//	        | identifier closure?
//	        | string closure?
//	closure := '*' | '+'
//	class   := (string | string '-' string)* ']'

var parserDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("RSLEX_PARSER_DEBUG")); v && err == nil {
		parserDebugLog = true
	}
}

// Parse parses source as one complete regular expression. The whole input
// must be consumed.
func Parse(source string) (Node, error) {
	ts := NewTokenStream(buffer.New(source), nil)
	node, err := ParseRegexp(ts)
	if err != nil {
		return nil, err
	}

	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, newSyntaxError("unexpected %s after expression", tok)
	}
	return node, nil
}

// ParseRegexp parses exactly one regular expression from ts and leaves the
// token that ended it (End, end of input, or an enclosing ')') unread for
// the caller to inspect. The terminator character itself, if any, has been
// consumed by the scanner.
func ParseRegexp(ts *TokenStream) (Node, error) {
	node, err := parseUnion(ts)
	if err != nil {
		return nil, err
	}

	if parserDebugLog {
		pp.Println(node)
		log.Println(node.String())
	}
	return node, nil
}

func parseUnion(ts *TokenStream) (Node, error) {
	left, err := parseConcat(ts)
	if err != nil {
		return nil, err
	}

	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenBar {
		ts.Unread(tok)
		return left, nil
	}

	right, err := parseUnion(ts)
	if err != nil {
		return nil, err
	}
	return &Union{Left: left, Right: right}, nil
}

func parseConcat(ts *TokenStream) (Node, error) {
	left, err := parseFactor(ts)
	if err != nil {
		return nil, err
	}

	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokenBar, TokenEnd, TokenRParen, TokenEOF:
		// concatenation ends here; the token belongs to an enclosing
		// production or to the caller
		ts.Unread(tok)
		return left, nil
	}
	ts.Unread(tok)

	right, err := parseConcat(ts)
	if err != nil {
		return nil, err
	}
	return &Concat{Left: left, Right: right}, nil
}

func parseFactor(ts *TokenStream) (Node, error) {
	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}

	var node Node
	switch tok.Kind {
	case TokenLParen:
		node, err = parseUnion(ts)
		if err != nil {
			return nil, err
		}
		closing, err := ts.Next()
		if err != nil {
			return nil, err
		}
		if closing.Kind != TokenRParen {
			return nil, newSyntaxError("expected ')', got %s", closing)
		}
	case TokenLBracket:
		node, err = parseCharClass(ts)
		if err != nil {
			return nil, err
		}
	case TokenIdentifier:
		node = &Symbol{Name: tok.Text}
	case TokenString:
		node = &Literal{Text: tok.Text}
	case TokenInvalid:
		return nil, newLexicalError("unrecognized %s", tok)
	default:
		return nil, newSyntaxError("unexpected %s in expression", tok)
	}

	return parseClosure(ts, node)
}

// parseClosure wraps node in a repetition if a trailing '*' or '+' follows;
// any other token is left for the enclosing production.
func parseClosure(ts *TokenStream, node Node) (Node, error) {
	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenStar:
		return &Star{Inner: node}, nil
	case TokenPlus:
		return &OnePlus{Inner: node}, nil
	default:
		ts.Unread(tok)
		return node, nil
	}
}

func parseCharClass(ts *TokenStream) (Node, error) {
	var items []ClassItem
	for {
		tok, err := ts.Next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenRBracket:
			return &CharClass{Items: items}, nil
		case TokenString:
			item, err := parseClassItem(ts, tok.Text)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case TokenDash:
			return nil, newSyntaxError("character class range is missing its lower bound")
		case TokenInvalid:
			return nil, newLexicalError("unrecognized %s", tok)
		default:
			return nil, newSyntaxError("unexpected %s in character class", tok)
		}
	}
}

// parseClassItem has consumed the string literal low; a following '-'
// turns it into a range, anything else leaves it a run of single members.
// Range bounds keep only the first character of each literal.
func parseClassItem(ts *TokenStream, low string) (ClassItem, error) {
	tok, err := ts.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenDash {
		ts.Unread(tok)
		return &Singles{Chars: low}, nil
	}

	bound, err := ts.Next()
	if err != nil {
		return nil, err
	}
	if bound.Kind != TokenString {
		return nil, newSyntaxError("character class range bound must be a string literal, got %s", bound)
	}
	if low == "" || bound.Text == "" {
		return nil, newSyntaxError("character class range bound is empty")
	}
	return &Range{Low: firstRune(low), High: firstRune(bound.Text)}, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
