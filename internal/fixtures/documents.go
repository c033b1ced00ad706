// Package fixtures ships a small set of realistic estate documents used by
// the CLI and end-to-end tests. Each fixture carries the category it is
// expected to classify as and whether compliance checking should fail.
package fixtures

import "github.com/estateops/triage/internal/core/domain"

type Fixture struct {
	Name             string
	Document         domain.Document
	ExpectedCategory domain.Category
	ShouldFail       bool
}

const deathCertificate = `STATE OF NEW YORK DEPARTMENT OF HEALTH

CERTIFICATE OF DEATH

Certificate Number: 2023-NY-00012345

1. Full Name of Deceased: Johnathan Edward Doe
2. Date of Death: January 1, 2023
3. Place of Death: New York-Presbyterian Hospital, New York, NY
4. Cause of Death: Acute Myocardial Infarction
5. Certifying Physician: Dr. Linda Park, M.D.
6. Date Signed: January 2, 2023

Filed with the New York Department of Health
Registrar: Helen T. Vaughn`

const willDocument = `LAST WILL AND TESTAMENT

I, Robert James Smith, residing at 456 Oak Avenue, Boston, MA 02101, being
of sound mind and memory, do hereby declare this to be my Last Will and
Testament, revoking all previous wills and codicils.

ARTICLE I - EXECUTOR
I appoint my daughter, Sarah Smith Johnson, as Executor of this Will.

ARTICLE II - BENEFICIARIES
I give, devise, and bequeath my estate as follows:
1. To my beloved wife, Mary Elizabeth Smith, I leave our primary residence.
2. To my daughter, Sarah Smith Johnson, I leave 40% of my remaining assets.
3. To my son, David Michael Smith, I leave 40% of my remaining assets.

IN WITNESS WHEREOF, I have hereunto set my hand and seal this 15th day of
June, 2022.

Robert James Smith, Testator`

const propertyDeed = `WARRANTY DEED

THIS DEED, made this 10th day of September, 2023, between John Michael
Thompson and Jane Marie Thompson, husband and wife (hereinafter "Grantor"),
and Estate of Richard Thompson (hereinafter "Grantee").

PROPERTY DESCRIPTION:
Lot 15, Block 7, Riverside Estates Subdivision, as recorded in Plat Book
23, Page 45, Jefferson County, State of Colorado.

PARCEL NUMBER: 123-456-789-000
PROPERTY ADDRESS: 123 River Road, Denver, CO 80201

TO HAVE AND TO HOLD the same unto the Grantee, its heirs and assigns
forever.`

const financialStatement = `BANK OF AMERICA
ESTATE ACCOUNT STATEMENT

Account Name: Estate of Margaret Wilson
Account Number: ****4567
Statement Period: January 1, 2023 - January 31, 2023

ACCOUNT SUMMARY
Beginning Balance (01/01/2023): $125,750.00
Total Deposits: $45,000.00
Total Withdrawals: $12,500.00
Ending Balance (01/31/2023): $158,250.00

ACCOUNT HOLDINGS
Checking Account: $58,250.00
Savings Account: $100,000.00
Total Assets: $158,250.00`

const taxDocument = `Form 1041 - U.S. Income Tax Return for Estates and Trusts
Tax Year 2022

Estate Information:
Name of Estate: Estate of William Charles Brown
EIN: 12-3456789
Date of Death: November 15, 2022

Income:
1. Interest Income: $5,234.00
2. Dividend Income: $12,456.00
Total Income: $60,690.00

Taxable Income: $48,690.00
Tax Liability: $11,685.60

Prepared by: Johnson & Associates CPAs`

const invalidDeathCertificate = `DEATH RECORD

Name: Jane Doe
Died: Sometime in 2023
Location: Hospital

This is a record of a deceased person but missing required fields.`

const invalidWill = `LAST WILL AND TESTAMENT

I leave everything to my children.

Signed,
John Smith`

const miscellaneousDocument = `CORRESPONDENCE

Dear Administrator,

We are writing to confirm receipt of the materials submitted for
Mr. Johnson. Additional documentation may be required to complete the
processing. We will review the submitted materials and contact you within
10 business days.

Sincerely,
Client Services Department
ABC Insurance Company`

// All returns the fixture set in a stable order.
func All() []Fixture {
	return []Fixture{
		{
			Name: "death_certificate_valid",
			Document: domain.Document{
				ID:       "DOC-001",
				Content:  deathCertificate,
				Metadata: map[string]string{"source": "NY Department of Health"},
			},
			ExpectedCategory: domain.CategoryDeathCertificate,
		},
		{
			Name: "will_valid",
			Document: domain.Document{
				ID:       "DOC-002",
				Content:  willDocument,
				Metadata: map[string]string{"source": "Legal Office"},
			},
			ExpectedCategory: domain.CategoryWillOrTrust,
		},
		{
			Name: "property_deed",
			Document: domain.Document{
				ID:       "DOC-003",
				Content:  propertyDeed,
				Metadata: map[string]string{"source": "County Recorder"},
			},
			ExpectedCategory: domain.CategoryPropertyDeed,
		},
		{
			Name: "financial_statement",
			Document: domain.Document{
				ID:       "DOC-004",
				Content:  financialStatement,
				Metadata: map[string]string{"source": "Bank of America"},
			},
			ExpectedCategory: domain.CategoryFinancialStatement,
		},
		{
			Name: "tax_document",
			Document: domain.Document{
				ID:       "DOC-005",
				Content:  taxDocument,
				Metadata: map[string]string{"source": "IRS"},
			},
			ExpectedCategory: domain.CategoryTaxDocument,
		},
		{
			Name: "invalid_death_certificate",
			Document: domain.Document{
				ID:      "DOC-006",
				Content: invalidDeathCertificate,
			},
			ExpectedCategory: domain.CategoryDeathCertificate,
			ShouldFail:       true,
		},
		{
			Name: "invalid_will",
			Document: domain.Document{
				ID:      "DOC-007",
				Content: invalidWill,
			},
			ExpectedCategory: domain.CategoryWillOrTrust,
			ShouldFail:       true,
		},
		{
			Name: "miscellaneous",
			Document: domain.Document{
				ID:       "DOC-008",
				Content:  miscellaneousDocument,
				Metadata: map[string]string{"source": "Insurance Company"},
			},
			ExpectedCategory: domain.CategoryMiscellaneous,
		},
	}
}

// ByName returns a fixture by its name.
func ByName(name string) (Fixture, bool) {
	for _, f := range All() {
		if f.Name == name {
			return f, true
		}
	}
	return Fixture{}, false
}
