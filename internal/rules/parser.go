package rules

import (
	"fmt"
	"io"
	"unicode"

	"github.com/alvesmarcos/rslex/internal/buffer"
	"github.com/alvesmarcos/rslex/internal/regexp"
)

// The native definition format is a comma-separated rule list:
//
//	digit  = ['0'-'9'],
//	number = digit+ ('.' digit+)?,
//	...
//
// Each pattern is handed to the expression parser with ',' as terminator,
// so the comma ends the pattern without being part of it. The trailing
// comma on the last rule is optional.

var ruleTerminators = []rune{','}

// ParseRules reads a lexer definition in the native text format.
func ParseRules(r io.Reader) (*RuleSet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	buf := buffer.New(string(content))
	rs := newRuleSet()
	for {
		buf.SkipWhitespace()
		c, ok := buf.NextChar()
		if !ok {
			break
		}
		if !unicode.IsLetter(c) {
			return nil, fmt.Errorf("rule name must start with a letter, got %q", c)
		}
		name := readName(buf, c)

		buf.SkipWhitespace()
		if c, ok := buf.NextChar(); !ok || c != '=' {
			return nil, fmt.Errorf("rule %s: expected '=' after rule name", name)
		}

		// one token stream per expression; the buffer survives it and
		// carries over to the next rule
		ts := regexp.NewTokenStream(buf, ruleTerminators)
		node, err := regexp.ParseRegexp(ts)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}

		tok, err := ts.Next()
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
		if tok.Kind != regexp.TokenEnd && tok.Kind != regexp.TokenEOF {
			return nil, fmt.Errorf("rule %s: unexpected %s after pattern", name, tok)
		}

		if err := rs.add(&Rule{Name: name, Source: node.String(), Pattern: node}); err != nil {
			return nil, err
		}
		if tok.Kind == regexp.TokenEOF {
			break
		}
	}
	return rs, nil
}

func readName(buf *buffer.LookaheadBuffer, first rune) string {
	name := []rune{first}
	for {
		c, ok := buf.NextChar()
		if !ok {
			return string(name)
		}
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			buf.ReturnChar(c)
			return string(name)
		}
		name = append(name, c)
	}
}
