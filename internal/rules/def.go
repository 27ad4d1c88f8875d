package rules

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/alvesmarcos/rslex/internal/regexp"
)

// RuleOptions are per-rule knobs carried through to the recognizer builder.
type RuleOptions struct {
	// Skip marks tokens that are recognized and discarded (e.g. comments).
	Skip bool `json:"skip,omitempty" mapstructure:"skip"`
	// Priority breaks ties between rules matching the same prefix;
	// higher wins.
	Priority int `json:"priority,omitempty" mapstructure:"priority"`
}

// Rule is one named token pattern of a lexer definition.
type Rule struct {
	Name    string      `json:"name"`
	Source  string      `json:"pattern"`
	Pattern regexp.Node `json:"ast"`
	Options RuleOptions `json:"options"`
}

// RuleSet holds the rules of one lexer definition in declaration order.
type RuleSet struct {
	Rules []*Rule `json:"rules"`

	index map[string]*Rule
}

func newRuleSet() *RuleSet {
	return &RuleSet{index: map[string]*Rule{}}
}

func (rs *RuleSet) add(r *Rule) error {
	if _, exists := rs.index[r.Name]; exists {
		return fmt.Errorf("duplicate rule %q", r.Name)
	}
	rs.Rules = append(rs.Rules, r)
	rs.index[r.Name] = r
	return nil
}

// Lookup finds a rule by name.
func (rs *RuleSet) Lookup(name string) (*Rule, bool) {
	r, ok := rs.index[name]
	return r, ok
}

// Names lists the rule names in declaration order.
func (rs *RuleSet) Names() []string {
	return lo.Map(rs.Rules, func(r *Rule, _ int) string {
		return r.Name
	})
}
