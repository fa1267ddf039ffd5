// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import "cnic-scan/internal/help"

// GetCheckInfo returns standardized information about the name extractor
func (e *Extractor) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "NAME",
		ShortDescription: "Extracts the holder name and father name fields",
		DetailedDescription: `The name extractor resolves the Name and Father Name fields from labeled lines, trimming separator noise and card boilerplate off the value span before validating it as two to four alphabetic words.

When OCR loses both captions entirely, a standalone fallback scans unlabeled name-pattern lines in input order and assigns the first to father_name and the second to name. The father's name is printed above the holder's on the card face, so this ordering is a layout rule, not a guess to be tuned.

The fallback only activates for a field with no labeled candidate anywhere in the input; a labeled value always wins regardless of input order.`,

		Patterns: []string{
			"Name <value>",
			"Father Name <value> (apostrophe and typo variants accepted)",
			"Standalone alphabetic lines of 2-4 words (fallback)",
		},

		SupportedFormats: []string{
			"Alphabetic words with spaces, 3-50 characters",
			"At least two words",
			"Output title-cased",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Labeled Line", Description: "Value next to its caption", Weight: 90},
			{Name: "Standalone Fallback", Description: "Position-based assignment of unlabeled lines", Weight: 55},
		},

		Examples: []string{
			"cnic-scan --help name",
		},
	}
}
