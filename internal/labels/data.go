// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package labels

import "cnic-scan/internal/detector"

// labelSpec binds a field label to its canonical printed spellings and the
// OCR misspellings seen in the field. Variants match at distance 0, so new
// typo sightings are table additions, not code changes.
type labelSpec struct {
	Label     detector.FieldLabel
	Canonical []string
	Variants  []string
}

// labelTable is ordered longest-first so compound captions ("Father Name",
// "Date of Birth") are tried before the bare "Name" they contain.
var labelTable = []labelSpec{
	{
		Label:     detector.LabelIdentityNumber,
		Canonical: []string{"identity number"},
		Variants:  []string{"identity numbe", "ldentity number", "identitynumber"},
	},
	{
		Label:     detector.LabelCountryOfStay,
		Canonical: []string{"country of stay"},
		Variants:  []string{"countryofstay", "country ofstay", "countryof stay"},
	},
	{
		Label:     detector.LabelDateOfBirth,
		Canonical: []string{"date of birth"},
		Variants:  []string{"date of birt", "dateof birth", "date ofbirth"},
	},
	{
		Label:     detector.LabelDateOfIssue,
		Canonical: []string{"date of issue"},
		Variants:  []string{"date of lssue", "date of 1ssue", "dateof issue"},
	},
	{
		Label:     detector.LabelDateOfExpiry,
		Canonical: []string{"date of expiry"},
		Variants:  []string{"date of expir", "date of expiiy", "dateof expiry"},
	},
	{
		Label:     detector.LabelFatherName,
		Canonical: []string{"father name", "father's name", "fathers name"},
		Variants:  []string{"fathet name", "fathei name", "father namo"},
	},
	{
		Label:     detector.LabelGender,
		Canonical: []string{"gender"},
		Variants:  []string{"gende", "gendei", "gendet"},
	},
	{
		Label:     detector.LabelName,
		Canonical: []string{"name"},
		Variants:  []string{"namo", "nane"},
	},
}
