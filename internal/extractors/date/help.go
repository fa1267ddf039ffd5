// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import "cnic-scan/internal/help"

// GetCheckInfo returns standardized information about the date extractor
func (e *Extractor) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "DATE",
		ShortDescription: "Extracts birth, issue, and expiry dates from labeled lines",
		DetailedDescription: `The date extractor resolves the three CNIC date fields (Date of Birth, Date of Issue, Date of Expiry) from labeled OCR lines.

It accepts DD<sep>MM<sep>YYYY tokens where the separator is a slash, dot, hyphen, or space, and normalizes every accepted date to DD/MM/YYYY. Tokens with a day above 31, a month above 12, or a year outside 1900-2100 are rejected outright rather than coerced.

On combined multi-field lines each date caption is paired with the first unconsumed date token that follows it, left to right, which recovers rows like "Date of Expiry Date of Issue 22.01.2021 22.01.2014".`,

		Patterns: []string{
			"DD/MM/YYYY",
			"DD.MM.YYYY",
			"DD-MM-YYYY",
			"DD MM YYYY (space-separated)",
		},

		SupportedFormats: []string{
			"Day 01-31, month 01-12",
			"Year 1900-2100",
			"Issue/expiry ordering is advisory, not enforced",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Labeled Line", Description: "Date found on the same line as its caption", Weight: 90},
			{Name: "Multi-Field Line", Description: "Date recovered from a combined caption row", Weight: 75},
		},

		Examples: []string{
			"cnic-scan --file card-ocr.txt --format json",
			"cnic-scan --file card-ocr.txt --raw | grep date",
		},
	}
}
