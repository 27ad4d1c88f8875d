package regexp

import (
	"strings"
)

// Node is a parsed regular expression. The tree is strictly owned: every
// internal node holds its children exclusively, and its shape mirrors the
// operator nesting of the source text (union and concat chains lean right).
type Node interface {
	// String renders the node back to source syntax; parsing the result
	// yields a structurally equal tree.
	String() string
	node()
}

// Symbol is a reference to another named pattern. It is recorded as-is;
// resolving it against rule definitions happens downstream.
type Symbol struct {
	Name string
}

// Literal matches its text verbatim.
type Literal struct {
	Text string
}

// Union is the alternation of two sub-expressions.
type Union struct {
	Left, Right Node
}

// Concat is the sequential composition of two sub-expressions.
type Concat struct {
	Left, Right Node
}

// Star is zero-or-more repetition.
type Star struct {
	Inner Node
}

// OnePlus is one-or-more repetition.
type OnePlus struct {
	Inner Node
}

// CharClass matches any single character described by one of its items.
type CharClass struct {
	Items []ClassItem
}

// Epsilon is the empty expression. The grammar never produces it; it exists
// for downstream construction of recognizers.
type Epsilon struct{}

func (*Symbol) node()    {}
func (*Literal) node()   {}
func (*Union) node()     {}
func (*Concat) node()    {}
func (*Star) node()      {}
func (*OnePlus) node()   {}
func (*CharClass) node() {}
func (*Epsilon) node()   {}

// ClassItem is one element of a character class, taken exactly as written:
// no range direction check and no overlap merging happens at parse time.
type ClassItem interface {
	String() string
	classItem()
}

// Singles lists characters that are each individually a class member.
type Singles struct {
	Chars string
}

// Range is an inclusive character range.
type Range struct {
	Low, High rune
}

func (*Singles) classItem() {}
func (*Range) classItem()   {}

func (n *Symbol) String() string {
	return n.Name
}

func (n *Literal) String() string {
	return quoteLiteral(n.Text)
}

func (n *Union) String() string {
	// the parser builds right-leaning chains, so a union on the left can
	// only come from explicit grouping; keep the parentheses
	left := n.Left.String()
	if _, ok := n.Left.(*Union); ok {
		left = "(" + left + ")"
	}
	return left + "|" + n.Right.String()
}

func (n *Concat) String() string {
	left := n.Left.String()
	switch n.Left.(type) {
	case *Union, *Concat:
		left = "(" + left + ")"
	}
	right := n.Right.String()
	if _, ok := n.Right.(*Union); ok {
		right = "(" + right + ")"
	}
	return left + " " + right
}

func (n *Star) String() string {
	return closureOperand(n.Inner) + "*"
}

func (n *OnePlus) String() string {
	return closureOperand(n.Inner) + "+"
}

func (n *CharClass) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, item := range n.Items {
		b.WriteString(item.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (n *Epsilon) String() string {
	return ""
}

func (i *Singles) String() string {
	return quoteLiteral(i.Chars)
}

func (i *Range) String() string {
	return quoteLiteral(string(i.Low)) + "-" + quoteLiteral(string(i.High))
}

func closureOperand(n Node) string {
	switch n.(type) {
	case *Symbol, *Literal, *CharClass:
		return n.String()
	default:
		return "(" + n.String() + ")"
	}
}

func quoteLiteral(s string) string {
	if strings.ContainsRune(s, '\'') {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}
