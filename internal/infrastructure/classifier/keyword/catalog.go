package keyword

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/estateops/triage/internal/core/domain"
)

// DefaultStrongSignalFloor is the confidence floor applied when a
// taxonomy-defining phrase is present, tunable via the catalog file.
const DefaultStrongSignalFloor = 0.75

// CategoryPatterns holds the keyword set for one category. StrongSignals is
// the subset of patterns whose presence alone pins the confidence floor.
type CategoryPatterns struct {
	Category      domain.Category `yaml:"category"`
	Patterns      []string        `yaml:"patterns"`
	StrongSignals []string        `yaml:"strong_signals,omitempty"`
}

// Catalog is the full keyword configuration for the classifier. Category
// order is significant: ties are broken in favor of earlier entries.
type Catalog struct {
	StrongSignalFloor float64            `yaml:"strong_signal_floor"`
	Categories        []CategoryPatterns `yaml:"categories"`
}

// DefaultCatalog returns the built-in estate document keyword tables.
func DefaultCatalog() Catalog {
	return Catalog{
		StrongSignalFloor: DefaultStrongSignalFloor,
		Categories: []CategoryPatterns{
			{
				Category: domain.CategoryDeathCertificate,
				Patterns: []string{
					"certificate of death",
					"death certificate",
					"deceased",
					"date of death",
					"cause of death",
					"certifying physician",
					"funeral director",
					"vital statistics",
					"department of health",
				},
				StrongSignals: []string{
					"certificate of death",
					"death certificate",
				},
			},
			{
				Category: domain.CategoryWillOrTrust,
				Patterns: []string{
					"last will and testament",
					"trust agreement",
					"living trust",
					"revocable trust",
					"irrevocable trust",
					"testamentary",
					"executor",
					"trustee",
					"beneficiary",
					"bequeath",
					"estate planning",
				},
				StrongSignals: []string{
					"last will and testament",
					"trust agreement",
					"living trust",
				},
			},
			{
				Category: domain.CategoryPropertyDeed,
				Patterns: []string{
					"property deed",
					"deed of trust",
					"warranty deed",
					"quitclaim deed",
					"real property",
					"parcel",
					"grantor",
					"grantee",
					"property description",
					"recording information",
				},
				StrongSignals: []string{
					"warranty deed",
					"quitclaim deed",
					"property deed",
				},
			},
			{
				Category: domain.CategoryFinancialStatement,
				Patterns: []string{
					"financial statement",
					"bank statement",
					"investment account",
					"brokerage",
					"account balance",
					"portfolio",
					"assets",
					"liabilities",
					"net worth",
					"account summary",
				},
				StrongSignals: []string{
					"financial statement",
					"bank statement",
					"account summary",
				},
			},
			{
				Category: domain.CategoryTaxDocument,
				Patterns: []string{
					"tax return",
					"form 1040",
					"form 1041",
					"w-2",
					"1099",
					"tax assessment",
					"irs",
					"internal revenue",
					"taxable income",
					"deductions",
					"tax liability",
				},
				StrongSignals: []string{
					"tax return",
					"form 1040",
					"form 1041",
				},
			},
		},
	}
}

// LoadCatalog reads a YAML keyword catalog from disk. It is meant for
// tuning deployments without a rebuild; the file fully replaces the
// built-in tables.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if catalog.StrongSignalFloor == 0 {
		catalog.StrongSignalFloor = DefaultStrongSignalFloor
	}
	if err := catalog.validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

func (c Catalog) validate() error {
	if c.StrongSignalFloor < 0 || c.StrongSignalFloor > 1 {
		return fmt.Errorf("strong_signal_floor %v outside [0,1]", c.StrongSignalFloor)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("catalog has no categories")
	}
	for _, set := range c.Categories {
		if !set.Category.Valid() {
			return fmt.Errorf("unknown category %q in catalog", set.Category)
		}
		if set.Category == domain.CategoryMiscellaneous {
			return fmt.Errorf("miscellaneous is the fallback category and takes no patterns")
		}
		if len(set.Patterns) == 0 {
			return fmt.Errorf("category %q has no patterns", set.Category)
		}
	}
	return nil
}
