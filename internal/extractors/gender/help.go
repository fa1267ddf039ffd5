// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gender

import "cnic-scan/internal/help"

// GetCheckInfo returns standardized information about the gender extractor
func (e *Extractor) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "GENDER",
		ShortDescription: "Extracts the gender field from a controlled vocabulary",
		DetailedDescription: `The gender extractor matches the value after the Gender caption against a fixed token table: M/F and the Male/Female spellings, plus the OCR-damaged forms seen in the field (Maie, Fernale). Caption damage (Gende, Gendet) is handled by the label matcher.

Output is always canonical Male or Female. Any token outside the table is rejected and the field stays unresolved.`,

		Patterns: []string{
			"Gender M / Gender F",
			"Gender Male / Gender Female",
		},

		SupportedFormats: []string{
			"Case-insensitive token match",
			"Output canonicalized to Male/Female",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Labeled Line", Description: "Token next to the Gender caption", Weight: 90},
		},

		Examples: []string{
			"cnic-scan --help gender",
		},
	}
}
