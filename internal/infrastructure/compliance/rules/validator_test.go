package rules

import (
	"context"
	"testing"

	"github.com/estateops/triage/internal/core/domain"
)

func TestValidateCompliantDeathCertificate(t *testing.T) {
	v := NewValidator()

	content := `Certificate of Death
Name of Deceased: John Smith
Date of Death: January 15, 2024
Certificate Number: 2024-001234`

	compliance, err := v.Validate(context.Background(), domain.CategoryDeathCertificate, content)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliance.Compliant {
		t.Fatalf("expected compliant, violations: %v", compliance.Violations)
	}
	if compliance.CheckedRules != 4 {
		t.Fatalf("checked rules = %d, want 4", compliance.CheckedRules)
	}
	if len(compliance.Violations) != 0 {
		t.Fatalf("violations should be empty, got %v", compliance.Violations)
	}
}

func TestValidateDeathCertificateAbbreviatedNumber(t *testing.T) {
	v := NewValidator()

	// "Certificate No" without the full word "Number" still satisfies the
	// certificate-number rule.
	content := "Certificate of Death. Date of Death: 2023-01-01. Deceased: John Doe. Certificate No: 12345."

	compliance, err := v.Validate(context.Background(), domain.CategoryDeathCertificate, content)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliance.Compliant {
		t.Fatalf("expected compliant, violations: %v", compliance.Violations)
	}
	if compliance.CheckedRules != 4 {
		t.Fatalf("checked rules = %d, want 4", compliance.CheckedRules)
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	v := NewValidator()

	// Has the title and a name, lacks date of death and certificate number.
	content := "Certificate of Death for the deceased John Smith"

	compliance, err := v.Validate(context.Background(), domain.CategoryDeathCertificate, content)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if compliance.Compliant {
		t.Fatalf("expected non-compliant")
	}
	want := []string{
		"Must have 'Date of Death' field",
		"Must have certificate number",
	}
	if len(compliance.Violations) != len(want) {
		t.Fatalf("violations = %v, want %v", compliance.Violations, want)
	}
	for i := range want {
		if compliance.Violations[i] != want[i] {
			t.Fatalf("violations[%d] = %q, want %q", i, compliance.Violations[i], want[i])
		}
	}
	if compliance.CheckedRules != 4 {
		t.Fatalf("all rules must be evaluated, checked = %d", compliance.CheckedRules)
	}
}

func TestValidateMiscellaneousBypassesRules(t *testing.T) {
	v := NewValidator()

	compliance, err := v.Validate(context.Background(), domain.CategoryMiscellaneous, "anything at all")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliance.Compliant {
		t.Fatalf("miscellaneous must always be compliant")
	}
	if compliance.CheckedRules != 0 {
		t.Fatalf("checked rules = %d, want 0", compliance.CheckedRules)
	}
	if len(compliance.Violations) != 0 {
		t.Fatalf("violations should be empty, got %v", compliance.Violations)
	}
}

func TestValidateWillOrTrust(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name       string
		content    string
		compliant  bool
		violations int
	}{
		{
			name:      "complete will",
			content:   "Last Will and Testament. I, the testator, bequeath my estate to my beneficiary.",
			compliant: true,
		},
		{
			name:       "missing beneficiary",
			content:    "Last Will and Testament of the testator.",
			compliant:  false,
			violations: 1,
		},
		{
			name:       "empty content fails everything",
			content:    "",
			compliant:  false,
			violations: 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compliance, err := v.Validate(context.Background(), domain.CategoryWillOrTrust, tc.content)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if compliance.Compliant != tc.compliant {
				t.Fatalf("compliant = %v, violations: %v", compliance.Compliant, compliance.Violations)
			}
			if !tc.compliant && len(compliance.Violations) != tc.violations {
				t.Fatalf("violations = %v, want %d", compliance.Violations, tc.violations)
			}
			if compliance.CheckedRules != 3 {
				t.Fatalf("checked rules = %d, want 3", compliance.CheckedRules)
			}
		})
	}
}

func TestValidatePropertyDeed(t *testing.T) {
	v := NewValidator()

	compliance, err := v.Validate(context.Background(), domain.CategoryPropertyDeed,
		"Warranty Deed. Legal description: Lot 5, Block 2, parcel 123-456.")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliance.Compliant || compliance.CheckedRules != 2 {
		t.Fatalf("unexpected result: %+v", compliance)
	}
}

func TestValidateFinancialStatement(t *testing.T) {
	v := NewValidator()

	compliant, err := v.Validate(context.Background(), domain.CategoryFinancialStatement,
		"Account statement: closing balance $12,450.88")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliant.Compliant {
		t.Fatalf("expected compliant, violations: %v", compliant.Violations)
	}

	missing, err := v.Validate(context.Background(), domain.CategoryFinancialStatement,
		"Account statement with no figures disclosed")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if missing.Compliant {
		t.Fatalf("expected violation for missing monetary amounts")
	}
	if missing.Violations[0] != "Must include monetary amounts" {
		t.Fatalf("violation = %q", missing.Violations[0])
	}
}

func TestValidateTaxDocument(t *testing.T) {
	v := NewValidator()

	compliance, err := v.Validate(context.Background(), domain.CategoryTaxDocument,
		"Form 1040 U.S. Individual Income Tax Return, tax year 2023")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !compliance.Compliant || compliance.CheckedRules != 2 {
		t.Fatalf("unexpected result: %+v", compliance)
	}
}

func TestValidateDeterministic(t *testing.T) {
	v := NewValidator()
	content := "Certificate of Death missing most fields"

	first, err := v.Validate(context.Background(), domain.CategoryDeathCertificate, content)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := v.Validate(context.Background(), domain.CategoryDeathCertificate, content)
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		if len(next.Violations) != len(first.Violations) {
			t.Fatalf("run %d diverged: %v vs %v", i, next.Violations, first.Violations)
		}
		for j := range first.Violations {
			if next.Violations[j] != first.Violations[j] {
				t.Fatalf("violation order changed: %v vs %v", next.Violations, first.Violations)
			}
		}
	}
}

func TestRulesAccessor(t *testing.T) {
	v := NewValidator()
	if got := len(v.Rules(domain.CategoryDeathCertificate)); got != 4 {
		t.Fatalf("death certificate rules = %d, want 4", got)
	}
	if got := len(v.Rules(domain.CategoryMiscellaneous)); got != 0 {
		t.Fatalf("miscellaneous rules = %d, want 0", got)
	}
}
