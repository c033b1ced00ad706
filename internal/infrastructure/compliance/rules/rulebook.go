package rules

import (
	"regexp"
	"strings"

	"github.com/estateops/triage/internal/core/domain"
)

// Rule is a named predicate over document content. Description is the
// violation text reported when the predicate fails.
type Rule struct {
	Name        string
	Description string
	Check       func(content string) bool
}

var (
	reDateOfDeath    = regexp.MustCompile(`(?i)date of death`)
	reDeceasedName   = regexp.MustCompile(`(?i)(name of deceased|full name|deceased)`)
	reCertNumber     = regexp.MustCompile(`(?i)(certificate\s+(number|no\.?)|cert\.?\s*no\.?|registration)`)
	reTestator       = regexp.MustCompile(`(?i)(testator|grantor|settlor|trustor)`)
	reBeneficiary    = regexp.MustCompile(`(?i)(beneficiary|beneficiaries|heir|inherit)`)
	reDeedType       = regexp.MustCompile(`(?i)(warranty deed|quitclaim deed|deed of trust|property deed)`)
	rePropertyDesc   = regexp.MustCompile(`(?i)(property description|parcel|lot|legal description)`)
	reFinancialInfo  = regexp.MustCompile(`(?i)(account|balance|statement|financial)`)
	reMonetaryAmount = regexp.MustCompile(`\$[\d,]+\.?\d*`)
	reTaxInfo        = regexp.MustCompile(`(?i)(tax|irs|internal revenue|form \d+|schedule)`)
	reTaxYear        = regexp.MustCompile(`(?i)(tax year|year \d{4}|20\d{2})`)
)

func containsAnyFold(content string, terms ...string) bool {
	lower := strings.ToLower(content)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// defaultRulebook maps each category to its compliance rules. Miscellaneous
// deliberately has no entry: it bypasses validation by design.
func defaultRulebook() map[domain.Category][]Rule {
	return map[domain.Category][]Rule{
		domain.CategoryDeathCertificate: {
			{
				Name:        "contains_certificate_title",
				Description: "Must contain 'Certificate of Death'",
				Check: func(content string) bool {
					return containsAnyFold(content, "certificate of death")
				},
			},
			{
				Name:        "has_date_of_death",
				Description: "Must have 'Date of Death' field",
				Check:       reDateOfDeath.MatchString,
			},
			{
				Name:        "has_deceased_name",
				Description: "Must include deceased person's name",
				Check:       reDeceasedName.MatchString,
			},
			{
				Name:        "has_certificate_number",
				Description: "Must have certificate number",
				Check:       reCertNumber.MatchString,
			},
		},
		domain.CategoryWillOrTrust: {
			{
				Name:        "contains_will_or_trust",
				Description: "Must contain 'Last Will and Testament' or 'Trust Agreement'",
				Check: func(content string) bool {
					return containsAnyFold(content,
						"last will and testament", "trust agreement", "living trust", "revocable trust")
				},
			},
			{
				Name:        "has_testator_or_grantor",
				Description: "Must identify the testator or grantor",
				Check:       reTestator.MatchString,
			},
			{
				Name:        "has_beneficiary_info",
				Description: "Must include beneficiary information",
				Check:       reBeneficiary.MatchString,
			},
		},
		domain.CategoryPropertyDeed: {
			{
				Name:        "contains_deed_type",
				Description: "Must specify deed type",
				Check:       reDeedType.MatchString,
			},
			{
				Name:        "has_property_description",
				Description: "Must include property description",
				Check:       rePropertyDesc.MatchString,
			},
		},
		domain.CategoryFinancialStatement: {
			{
				Name:        "contains_financial_info",
				Description: "Must contain financial account information",
				Check:       reFinancialInfo.MatchString,
			},
			{
				Name:        "has_monetary_amounts",
				Description: "Must include monetary amounts",
				Check:       reMonetaryAmount.MatchString,
			},
		},
		domain.CategoryTaxDocument: {
			{
				Name:        "contains_tax_info",
				Description: "Must contain tax-related information",
				Check:       reTaxInfo.MatchString,
			},
			{
				Name:        "has_tax_year",
				Description: "Must specify tax year",
				Check:       reTaxYear.MatchString,
			},
		},
	}
}
