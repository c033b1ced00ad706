package keyword

import (
	"context"
	"strings"
	"testing"

	"github.com/estateops/triage/internal/core/domain"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestClassifyDeathCertificate(t *testing.T) {
	engine := newTestEngine(t)

	content := `CERTIFICATE OF DEATH
State Department of Health, Office of Vital Statistics
Name of Deceased: John Smith
Date of Death: January 15, 2024
Cause of Death: natural causes
Certifying Physician: Dr. Jane Brown`

	cls, err := engine.Classify(context.Background(), content)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryDeathCertificate {
		t.Fatalf("category = %s, want death_certificate", cls.Category)
	}
	if cls.CategoryCode != "01.0000-50" {
		t.Fatalf("code = %s, want 01.0000-50", cls.CategoryCode)
	}
	if cls.Confidence < 0.75 {
		t.Fatalf("confidence = %v, want >= 0.75", cls.Confidence)
	}
	if len(cls.MatchedKeywords) == 0 {
		t.Fatalf("expected matched keywords")
	}
}

func TestClassifyEmptyContentIsMiscellaneous(t *testing.T) {
	engine := newTestEngine(t)

	cls, err := engine.Classify(context.Background(), "")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryMiscellaneous {
		t.Fatalf("category = %s, want miscellaneous", cls.Category)
	}
	if cls.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0", cls.Confidence)
	}
	if cls.MatchedKeywords == nil || len(cls.MatchedKeywords) != 0 {
		t.Fatalf("matched keywords should be empty, got %v", cls.MatchedKeywords)
	}
}

func TestClassifyUnmatchedContentIsMiscellaneous(t *testing.T) {
	engine := newTestEngine(t)

	cls, err := engine.Classify(context.Background(), "Lunch menu for the cafeteria: soup, salad, sandwiches.")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryMiscellaneous {
		t.Fatalf("category = %s, want miscellaneous", cls.Category)
	}
	if cls.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0", cls.Confidence)
	}
}

func TestClassifyStrongSignalFloor(t *testing.T) {
	engine := newTestEngine(t)

	// A lone title phrase matches one pattern out of nine; the strong
	// signal still pins the confidence at the floor.
	cls, err := engine.Classify(context.Background(), "death certificate")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryDeathCertificate {
		t.Fatalf("category = %s, want death_certificate", cls.Category)
	}
	if cls.Confidence != DefaultStrongSignalFloor {
		t.Fatalf("confidence = %v, want %v", cls.Confidence, DefaultStrongSignalFloor)
	}
}

func TestClassifyNoStrongSignalKeepsRawScore(t *testing.T) {
	engine := newTestEngine(t)

	// "deceased" alone is a weak signal: 1 of 9 patterns, no floor.
	cls, err := engine.Classify(context.Background(), "records for the deceased")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryDeathCertificate {
		t.Fatalf("category = %s, want death_certificate", cls.Category)
	}
	want := 1.0 / 9.0
	if cls.Confidence != want {
		t.Fatalf("confidence = %v, want %v", cls.Confidence, want)
	}
}

func TestClassifyTieBreaksByCatalogOrder(t *testing.T) {
	engine := newTestEngine(t)

	// One match each for property_deed (parcel, 1/10) and
	// financial_statement (assets, 1/10): equal scores, earlier entry wins.
	cls, err := engine.Classify(context.Background(), "parcel assets")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryPropertyDeed {
		t.Fatalf("category = %s, want property_deed", cls.Category)
	}
}

func TestClassifyHigherScoreBeatsEarlierCategory(t *testing.T) {
	engine := newTestEngine(t)

	// Two financial matches against one deed match: the later category
	// wins on score, not position.
	cls, err := engine.Classify(context.Background(), "account balance and portfolio for the parcel")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryFinancialStatement {
		t.Fatalf("category = %s, want financial_statement", cls.Category)
	}
}

func TestClassifyAllPatternsMatchedIsFullConfidence(t *testing.T) {
	engine := newTestEngine(t)
	catalog := DefaultCatalog()

	var deathPatterns []string
	for _, entry := range catalog.Categories {
		if entry.Category == domain.CategoryDeathCertificate {
			deathPatterns = entry.Patterns
		}
	}
	content := strings.Join(deathPatterns, "\n")

	cls, err := engine.Classify(context.Background(), content)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if cls.Category != domain.CategoryDeathCertificate {
		t.Fatalf("category = %s, want death_certificate", cls.Category)
	}
	if cls.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", cls.Confidence)
	}
	if len(cls.MatchedKeywords) != len(deathPatterns) {
		t.Fatalf("matched %d keywords, want %d", len(cls.MatchedKeywords), len(deathPatterns))
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine(t)

	lower, err := engine.Classify(context.Background(), "last will and testament of the testator")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	upper, err := engine.Classify(context.Background(), "LAST WILL AND TESTAMENT OF THE TESTATOR")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if lower.Category != upper.Category || lower.Confidence != upper.Confidence {
		t.Fatalf("case should not matter: %+v vs %+v", lower, upper)
	}
	if lower.Category != domain.CategoryWillOrTrust {
		t.Fatalf("category = %s, want will_or_trust", lower.Category)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	content := "Trust Agreement naming the trustee and beneficiary"

	first, err := engine.Classify(context.Background(), content)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := engine.Classify(context.Background(), content)
		if err != nil {
			t.Fatalf("Classify() error = %v", err)
		}
		if next.Category != first.Category || next.Confidence != first.Confidence {
			t.Fatalf("run %d diverged: %+v vs %+v", i, next, first)
		}
	}
}
