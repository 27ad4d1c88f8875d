package regexp_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alvesmarcos/rslex/internal/buffer"
	"github.com/alvesmarcos/rslex/internal/regexp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source         string
		expected       regexp.Node
		expectToBeErr  bool
		expectedErrTag regexp.ErrorTag
	}{
		{
			source:   "a",
			expected: &regexp.Symbol{Name: "a"},
		},
		{
			source:   "a*",
			expected: &regexp.Star{Inner: &regexp.Symbol{Name: "a"}},
		},
		{
			source: "a(b|c)*",
			expected: &regexp.Concat{
				Left: &regexp.Symbol{Name: "a"},
				Right: &regexp.Star{
					Inner: &regexp.Union{
						Left:  &regexp.Symbol{Name: "b"},
						Right: &regexp.Symbol{Name: "c"},
					},
				},
			},
		},
		{
			source: "['0'-'9']+",
			expected: &regexp.OnePlus{
				Inner: &regexp.CharClass{
					Items: []regexp.ClassItem{
						&regexp.Range{Low: '0', High: '9'},
					},
				},
			},
		},
		{
			source: "['ab''cd''0'-'9''55']",
			expected: &regexp.CharClass{
				Items: []regexp.ClassItem{
					&regexp.Singles{Chars: "ab"},
					&regexp.Singles{Chars: "cd"},
					&regexp.Range{Low: '0', High: '9'},
					&regexp.Singles{Chars: "55"},
				},
			},
		},
		{
			source:   "[]",
			expected: &regexp.CharClass{},
		},
		{
			// range bounds keep only the first character of each literal
			source: "['abc'-'xyz']",
			expected: &regexp.CharClass{
				Items: []regexp.ClassItem{
					&regexp.Range{Low: 'a', High: 'x'},
				},
			},
		},
		{
			source: "letter (letter | digit)*",
			expected: &regexp.Concat{
				Left: &regexp.Symbol{Name: "letter"},
				Right: &regexp.Star{
					Inner: &regexp.Union{
						Left:  &regexp.Symbol{Name: "letter"},
						Right: &regexp.Symbol{Name: "digit"},
					},
				},
			},
		},
		{
			// concatenation chains lean right
			source: "['0'-'9']+ '.' ['0'-'9']+",
			expected: &regexp.Concat{
				Left: &regexp.OnePlus{
					Inner: &regexp.CharClass{
						Items: []regexp.ClassItem{&regexp.Range{Low: '0', High: '9'}},
					},
				},
				Right: &regexp.Concat{
					Left: &regexp.Literal{Text: "."},
					Right: &regexp.OnePlus{
						Inner: &regexp.CharClass{
							Items: []regexp.ClassItem{&regexp.Range{Low: '0', High: '9'}},
						},
					},
				},
			},
		},
		{
			// alternation chains lean right too
			source: "a|b|c",
			expected: &regexp.Union{
				Left: &regexp.Symbol{Name: "a"},
				Right: &regexp.Union{
					Left:  &regexp.Symbol{Name: "b"},
					Right: &regexp.Symbol{Name: "c"},
				},
			},
		},
		{
			source:   "'while'",
			expected: &regexp.Literal{Text: "while"},
		},
		{
			source: "('a'|'b')+",
			expected: &regexp.OnePlus{
				Inner: &regexp.Union{
					Left:  &regexp.Literal{Text: "a"},
					Right: &regexp.Literal{Text: "b"},
				},
			},
		},
		{
			source:         "",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "['A'--'Z']",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "['A'*'Z']",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "[-'Z']",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "'abc",
			expectToBeErr:  true,
			expectedErrTag: regexp.LexicalErrorTag,
		},
		{
			source:         "(a",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "a)",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "*a",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "a & b",
			expectToBeErr:  true,
			expectedErrTag: regexp.LexicalErrorTag,
		},
		{
			source:         "['A'-]",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
		{
			source:         "['A' 'Z'",
			expectToBeErr:  true,
			expectedErrTag: regexp.SyntaxErrorTag,
		},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			node, err := regexp.Parse(tt.source)
			if err != nil {
				if !tt.expectToBeErr {
					t.Fatal(err)
				}

				var parseErr *regexp.Error
				if !errors.As(err, &parseErr) {
					t.Fatalf("expect *regexp.Error but got %T: %v", err, err)
				}
				if parseErr.Tag != tt.expectedErrTag {
					t.Errorf("expect %s but got %s (%v)", tt.expectedErrTag, parseErr.Tag, err)
				}
				return
			}
			if tt.expectToBeErr {
				t.Fatalf("should be parse error, got %s", node)
			}

			if diff := cmp.Diff(tt.expected, node); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}

			// parsing the rendered form again yields an equal tree
			again, err := regexp.Parse(node.String())
			if err != nil {
				t.Fatalf("reparse %q: %v", node.String(), err)
			}
			if diff := cmp.Diff(node, again); diff != "" {
				t.Errorf("round trip through %q mismatch (-want +got):\n%s", node.String(), diff)
			}
		})
	}
}

func TestParseRegexpTerminator(t *testing.T) {
	t.Parallel()

	buf := buffer.New("letter*, tail")
	ts := regexp.NewTokenStream(buf, commaTerm)
	node, err := regexp.ParseRegexp(ts)
	if err != nil {
		t.Fatal(err)
	}

	expected := regexp.Node(&regexp.Star{Inner: &regexp.Symbol{Name: "letter"}})
	if diff := cmp.Diff(expected, node); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}

	// the terminator was consumed and surfaces as a single End token
	tok, err := ts.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != regexp.TokenEnd {
		t.Fatalf("expect terminator token but got %s", tok)
	}

	// nothing past the terminator was consumed
	tok, err = ts.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != regexp.TokenIdentifier || tok.Text != "tail" {
		t.Errorf("expect identifier tail but got %s", tok)
	}
}

func TestParseRegexpStopsAtRParen(t *testing.T) {
	t.Parallel()

	ts := regexp.NewTokenStream(buffer.New("a b)"), commaTerm)
	node, err := regexp.ParseRegexp(ts)
	if err != nil {
		t.Fatal(err)
	}

	expected := regexp.Node(&regexp.Concat{
		Left:  &regexp.Symbol{Name: "a"},
		Right: &regexp.Symbol{Name: "b"},
	})
	if diff := cmp.Diff(expected, node); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}

	tok, err := ts.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != regexp.TokenRParen {
		t.Errorf("expect ')' left for the caller but got %s", tok)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("a(b|c)*")
	f.Add("['0'-'9']+ '.' ['0'-'9']+")
	f.Add("['A'--'Z']")
	f.Fuzz(func(t *testing.T, source string) {
		node, err := regexp.Parse(source)
		if err != nil {
			t.Logf("INVALID: %q (%v)", source, err)
			return
		}

		again, err := regexp.Parse(node.String())
		if err != nil {
			t.Fatalf("reparse of %q (%q) failed: %v", source, node.String(), err)
		}
		if diff := cmp.Diff(node, again); diff != "" {
			t.Fatalf("round trip of %q mismatch (-want +got):\n%s", source, diff)
		}
	})
}
