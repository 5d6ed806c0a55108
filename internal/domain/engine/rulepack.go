package engine

import (
	"fmt"

	"github.com/Victor-armando18/checkout-functions/internal/domain"
)

// Rule is one JsonLogic predicate of a rule pack.
type Rule struct {
	ID          string         `json:"id" yaml:"id"`
	Phase       PipelinePhase  `json:"phase" yaml:"phase"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Logic       map[string]any `json:"logic" yaml:"logic"`
	// Message is reported as a diagnostic when a threshold rule holds.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// RulePack is the versioned set of predicates driving one function.
type RulePack struct {
	Version     string `json:"version" yaml:"version"`
	Function    string `json:"function" yaml:"function"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Rules       []Rule `json:"rules" yaml:"rules"`
}

// Validate checks the pack is usable: known phases, non-empty logic and at
// least one match rule.
func (p *RulePack) Validate() error {
	if p.Function == "" {
		return fmt.Errorf("%w: function name is empty", domain.ErrInvalidRulePack)
	}

	matches := 0
	seen := make(map[string]struct{}, len(p.Rules))
	for i, r := range p.Rules {
		if r.ID == "" {
			return fmt.Errorf("%w: rule %d has no id", domain.ErrInvalidRulePack, i)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate rule id %q", domain.ErrInvalidRulePack, r.ID)
		}
		seen[r.ID] = struct{}{}

		if !r.Phase.Valid() {
			return fmt.Errorf("%w: rule %q has unknown phase %q", domain.ErrInvalidRulePack, r.ID, r.Phase)
		}
		if len(r.Logic) == 0 {
			return fmt.Errorf("%w: rule %q has no logic", domain.ErrInvalidRulePack, r.ID)
		}
		if r.Phase == Match {
			matches++
		}
	}

	if matches == 0 {
		return fmt.Errorf("%w: pack %q has no match rules", domain.ErrInvalidRulePack, p.Function)
	}
	return nil
}

// Phase returns the rules of a phase in pack order.
func (p *RulePack) Phase(phase PipelinePhase) []Rule {
	var f []Rule
	for _, r := range p.Rules {
		if r.Phase == phase {
			f = append(f, r)
		}
	}
	return f
}
