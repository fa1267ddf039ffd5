// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package identity

import "cnic-scan/internal/help"

// GetCheckInfo returns standardized information about the identity-number extractor
func (e *Extractor) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "IDENTITY_NUMBER",
		ShortDescription: "Extracts the 13-digit CNIC identity number",
		DetailedDescription: `The identity-number extractor matches the XXXXX-XXXXXXX-X CNIC number, tolerating the separator damage OCR introduces between the digit groups.

Digit groups may be joined by a hyphen, dot, slash, space, or nothing at all; a fully contiguous 13-digit run gets the canonical hyphens re-inserted at positions 5 and 12. Runs of 12 or 14 digits are rejected, never truncated or padded.

Because the pattern is unambiguous, a bare number line with no caption is still accepted, at standalone-fallback priority.`,

		Patterns: []string{
			"XXXXX-XXXXXXX-X (canonical)",
			"XXXXX XXXXXXX X (space-separated)",
			"XXXXXXXXXXXXX (13 contiguous digits)",
		},

		SupportedFormats: []string{
			"Exactly 13 digits after separator stripping",
			"Output always canonicalized to XXXXX-XXXXXXX-X",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Labeled Line", Description: "Number found next to the Identity Number caption", Weight: 90},
			{Name: "Multi-Field Line", Description: "Number recovered from a combined caption row", Weight: 75},
			{Name: "Standalone", Description: "Bare number line with no caption", Weight: 55},
		},

		Examples: []string{
			"cnic-scan --help identity_number",
		},
	}
}
