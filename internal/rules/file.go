package rules

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/alvesmarcos/rslex/internal/regexp"
)

type rulesFileDef struct {
	Tokens []tokenRuleDef `json:"tokens"`
}

type tokenRuleDef struct {
	Name    string         `json:"name"`
	Pattern string         `json:"pattern"`
	Options map[string]any `json:"options"`
}

// ParseRulesYAML reads a lexer definition of the form
//
//	tokens:
//	  - name: number
//	    pattern: "['0'-'9']+"
//	    options: {skip: false, priority: 1}
func ParseRulesYAML(r io.Reader) (*RuleSet, error) {
	yamlBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(yamlBytes)
	if err != nil {
		return nil, fmt.Errorf("yaml.YAMLToJSON: %w", err)
	}

	return ParseRulesJSON(bytes.NewReader(jsonBytes))
}

// ParseRulesJSON reads the JSON equivalent of the YAML definition format.
func ParseRulesJSON(r io.Reader) (*RuleSet, error) {
	decoder := json.NewDecoder(r)

	var def rulesFileDef
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("json.Decode: %w", err)
	}

	return def.compile()
}

func (def rulesFileDef) compile() (*RuleSet, error) {
	rs := newRuleSet()
	for i, td := range def.Tokens {
		if td.Name == "" {
			return nil, fmt.Errorf("tokens[%d]: missing name", i)
		}
		if td.Pattern == "" {
			return nil, fmt.Errorf("tokens[%d] (%s): missing pattern", i, td.Name)
		}

		node, err := regexp.Parse(td.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", td.Name, err)
		}

		var opts RuleOptions
		if td.Options != nil {
			if err := mapstructure.Decode(td.Options, &opts); err != nil {
				return nil, fmt.Errorf("rule %s: options: %w", td.Name, err)
			}
		}

		if err := rs.add(&Rule{Name: td.Name, Source: td.Pattern, Pattern: node, Options: opts}); err != nil {
			return nil, err
		}
	}
	return rs, nil
}
