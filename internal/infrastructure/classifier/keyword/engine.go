// Package keyword implements deterministic document classification by
// scoring content against per-category keyword tables.
package keyword

import (
	"context"
	"fmt"
	"strings"

	"github.com/estateops/triage/internal/core/domain"
)

type patternSet struct {
	category domain.Category
	patterns []string
	strong   []string
}

// Engine scores document content against the catalog and picks the best
// category. Classify never fails: unmatched or empty content is a valid
// miscellaneous classification, not an error.
type Engine struct {
	floor float64
	sets  []patternSet
}

func NewEngine(catalog Catalog) (*Engine, error) {
	if err := catalog.validate(); err != nil {
		return nil, fmt.Errorf("invalid keyword catalog: %w", err)
	}

	sets := make([]patternSet, 0, len(catalog.Categories))
	for _, entry := range catalog.Categories {
		sets = append(sets, patternSet{
			category: entry.Category,
			patterns: lowerAll(entry.Patterns),
			strong:   lowerAll(entry.StrongSignals),
		})
	}
	return &Engine{floor: catalog.StrongSignalFloor, sets: sets}, nil
}

func (e *Engine) Classify(_ context.Context, content string) (domain.Classification, error) {
	lower := strings.ToLower(content)

	var (
		bestScore   float64
		bestSet     *patternSet
		bestMatched []string
		bestStrong  bool
	)

	for i := range e.sets {
		set := &e.sets[i]

		var matched []string
		for _, pattern := range set.patterns {
			if strings.Contains(lower, pattern) {
				matched = append(matched, pattern)
			}
		}
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(len(set.patterns))

		// Strictly greater: catalog order breaks ties deterministically.
		if score > bestScore {
			bestScore = score
			bestSet = set
			bestMatched = matched
			bestStrong = containsAny(lower, set.strong)
		}
	}

	if bestSet == nil {
		return miscellaneous(), nil
	}

	confidence := bestScore
	if bestStrong && confidence < e.floor {
		confidence = e.floor
	}
	if confidence > 1 {
		confidence = 1
	}

	return domain.Classification{
		Category:        bestSet.category,
		CategoryCode:    bestSet.category.Code(),
		CategoryName:    bestSet.category.Label(),
		Confidence:      confidence,
		MatchedKeywords: bestMatched,
		Reasoning: fmt.Sprintf("matched %d/%d %s indicators",
			len(bestMatched), len(bestSet.patterns), strings.ToLower(bestSet.category.Label())),
	}, nil
}

func miscellaneous() domain.Classification {
	return domain.Classification{
		Category:        domain.CategoryMiscellaneous,
		CategoryCode:    domain.CategoryMiscellaneous.Code(),
		CategoryName:    domain.CategoryMiscellaneous.Label(),
		Confidence:      0,
		MatchedKeywords: []string{},
		Reasoning:       "no category indicators matched",
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

func containsAny(content string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(content, p) {
			return true
		}
	}
	return false
}
