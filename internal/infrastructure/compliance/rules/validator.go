// Package rules implements category-specific compliance validation over
// document content.
package rules

import (
	"context"

	"github.com/estateops/triage/internal/core/domain"
)

// Validator evaluates the static rule book for a category. Every rule is
// evaluated (no short-circuit) so the violation list is complete, and the
// predicates are pure functions of the content, so identical inputs always
// produce identical results.
type Validator struct {
	book map[domain.Category][]Rule
}

func NewValidator() *Validator {
	return &Validator{book: defaultRulebook()}
}

func (v *Validator) Validate(_ context.Context, category domain.Category, content string) (domain.Compliance, error) {
	ruleSet := v.book[category]

	violations := []string{}
	for _, rule := range ruleSet {
		if !rule.Check(content) {
			violations = append(violations, rule.Description)
		}
	}

	return domain.Compliance{
		Compliant:    len(violations) == 0,
		Category:     category,
		Violations:   violations,
		CheckedRules: len(ruleSet),
	}, nil
}

// Rules exposes the rule set registered for a category, mainly so the
// catalog can be inspected and tested on its own.
func (v *Validator) Rules(category domain.Category) []Rule {
	out := make([]Rule, len(v.book[category]))
	copy(out, v.book[category])
	return out
}
