package domain

// Category identifies one of the fixed estate document categories.
type Category string

const (
	CategoryDeathCertificate   Category = "death_certificate"
	CategoryWillOrTrust        Category = "will_or_trust"
	CategoryPropertyDeed       Category = "property_deed"
	CategoryFinancialStatement Category = "financial_statement"
	CategoryTaxDocument        Category = "tax_document"
	CategoryMiscellaneous      Category = "miscellaneous"
)

type categoryInfo struct {
	code  string
	label string
}

// The taxonomy codes are a fixed external contract and must not change.
var taxonomy = map[Category]categoryInfo{
	CategoryDeathCertificate:   {code: "01.0000-50", label: "Death Certificate"},
	CategoryWillOrTrust:        {code: "02.0300-50", label: "Will or Trust"},
	CategoryPropertyDeed:       {code: "03.0090-00", label: "Property Deed"},
	CategoryFinancialStatement: {code: "04.5000-00", label: "Financial Statement"},
	CategoryTaxDocument:        {code: "05.5000-70", label: "Tax Document"},
	CategoryMiscellaneous:      {code: "00.0000-00", label: "Miscellaneous"},
}

// categoryOrder is the declaration order used for deterministic tie-breaking
// during classification. Earlier categories win ties.
var categoryOrder = []Category{
	CategoryDeathCertificate,
	CategoryWillOrTrust,
	CategoryPropertyDeed,
	CategoryFinancialStatement,
	CategoryTaxDocument,
	CategoryMiscellaneous,
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Code returns the display code bound to the category, e.g. "01.0000-50".
func (c Category) Code() string {
	return taxonomy[c].code
}

// Label returns the human-readable category name.
func (c Category) Label() string {
	return taxonomy[c].label
}

// Valid reports whether c is part of the taxonomy.
func (c Category) Valid() bool {
	_, ok := taxonomy[c]
	return ok
}

// CategoryByCode resolves a display code back to its category.
func CategoryByCode(code string) (Category, bool) {
	for _, c := range categoryOrder {
		if taxonomy[c].code == code {
			return c, true
		}
	}
	return "", false
}
