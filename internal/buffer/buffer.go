package buffer

import (
	"unicode"
	"unicode/utf8"
)

// LookaheadBuffer supplies the characters of an in-memory source one at a
// time, with capacity to return exactly one character for re-reading.
type LookaheadBuffer struct {
	source     string
	index      int
	pending    rune
	hasPending bool
}

func New(source string) *LookaheadBuffer {
	return &LookaheadBuffer{source: source}
}

// NextChar consumes and returns the next character. The second return value
// is false at end of input.
func (b *LookaheadBuffer) NextChar() (rune, bool) {
	if b.hasPending {
		b.hasPending = false
		return b.pending, true
	}
	if b.index >= len(b.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(b.source[b.index:])
	b.index += size
	return r, true
}

// ReturnChar makes c the next character NextChar yields. At most one
// character may be pending; returning a second one before consuming the
// first replaces it and must not happen.
func (b *LookaheadBuffer) ReturnChar(c rune) {
	b.pending = c
	b.hasPending = true
}

// SkipWhitespace advances past any run of whitespace characters.
func (b *LookaheadBuffer) SkipWhitespace() {
	for {
		c, ok := b.NextChar()
		if !ok {
			return
		}
		if !unicode.IsSpace(c) {
			b.ReturnChar(c)
			return
		}
	}
}
