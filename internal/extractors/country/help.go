// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package country

import "cnic-scan/internal/help"

// GetCheckInfo returns standardized information about the country extractor
func (e *Extractor) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "COUNTRY_OF_STAY",
		ShortDescription: "Extracts the Country of Stay field against a controlled vocabulary",
		DetailedDescription: `The country extractor matches the value following the Country of Stay caption against a short controlled vocabulary, primarily Pakistan plus the countries seen on resident cards.

Caption damage like "CountryofStay" is handled by the label matcher's variant table. If the labeled span contains no recognizable country the field is left unresolved rather than guessed, so OCR garbage never masquerades as a country.`,

		Patterns: []string{
			"Country of Stay Pakistan",
			"CountryofStay Pakistan (merged caption)",
		},

		SupportedFormats: []string{
			"Longest-phrase-first vocabulary lookup",
			"Vocabulary extensible via configuration",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Labeled Line", Description: "Country token next to its caption", Weight: 90},
		},

		ConfigurationInfo: `Additional countries can be added under engine.countries in the
configuration file:

  engine:
    countries:
      - qatar
      - bahrain`,

		Examples: []string{
			"cnic-scan --file card-ocr.txt --format json",
			"cnic-scan --help country_of_stay",
		},
	}
}
