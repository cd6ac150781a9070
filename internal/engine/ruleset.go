package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuleSet is a validated rule configuration: which rules exist and the exact
// order they run in. A RuleSet only comes out of ParseRuleSet, so holding one
// means validation already passed.
type RuleSet struct {
	Version        string
	RuleIDs        []string
	ExecutionOrder []string
}

// ruleSetDoc mirrors ruleset.v1.sample.yaml.
type ruleSetDoc struct {
	Version string `yaml:"version"`
	Rules   []struct {
		ID string `yaml:"id"`
	} `yaml:"rules"`
	ExecutionOrder []string `yaml:"executionOrder"`
}

// ParseRuleSet decodes and validates a ruleset document.
//
// Rejected outright: duplicate rule ids, an empty execution order, duplicate
// order entries, order entries naming unknown rules, and rules missing from
// the order. Every configured rule runs exactly once per line or the ruleset
// does not load.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var doc ruleSetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode ruleset: %w", err)
	}

	if len(doc.Rules) == 0 {
		return nil, NewInvalidRuleSetError("ruleset declares no rules")
	}

	ids := make([]string, 0, len(doc.Rules))
	known := make(map[string]bool, len(doc.Rules))
	for i, r := range doc.Rules {
		if r.ID == "" {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("rule %d has no id", i+1))
		}
		if known[r.ID] {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("duplicate rule id %q", r.ID))
		}
		known[r.ID] = true
		ids = append(ids, r.ID)
	}

	if len(doc.ExecutionOrder) == 0 {
		return nil, NewInvalidRuleSetError("executionOrder is empty")
	}
	ordered := make(map[string]bool, len(doc.ExecutionOrder))
	for _, id := range doc.ExecutionOrder {
		if !known[id] {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("executionOrder names unknown rule %q", id))
		}
		if ordered[id] {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("executionOrder lists %q twice", id))
		}
		ordered[id] = true
	}
	for _, id := range ids {
		if !ordered[id] {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("rule %q missing from executionOrder", id))
		}
	}

	return &RuleSet{
		Version:        doc.Version,
		RuleIDs:        ids,
		ExecutionOrder: append([]string(nil), doc.ExecutionOrder...),
	}, nil
}

// LoadRuleSet reads and parses a ruleset file.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	rs, err := ParseRuleSet(data)
	if err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}

// Build constructs the bound rule list from the capability map. Each bound
// rule carries its explain order, (position+1)*10.
func (rs *RuleSet) Build(caps Capabilities) ([]BoundRule, error) {
	bound := make([]BoundRule, 0, len(rs.ExecutionOrder))
	for i, id := range rs.ExecutionOrder {
		ctor, ok := caps[id]
		if !ok {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("no capability for rule %q", id))
		}
		r := ctor()
		if r.ID() != id {
			return nil, NewInvalidRuleSetError(fmt.Sprintf("capability %q built rule %q", id, r.ID()))
		}
		bound = append(bound, BoundRule{ID: id, Order: (i + 1) * 10, Rule: r})
	}
	return bound, nil
}
