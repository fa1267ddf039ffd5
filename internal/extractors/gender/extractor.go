// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gender

import (
	"strings"

	"cnic-scan/internal/detector"
)

// genderTokens maps accepted value spellings, including OCR damage, to the
// canonical output. Anything not in this table is rejected.
var genderTokens = map[string]string{
	"m":       "Male",
	"male":    "Male",
	"maie":    "Male",
	"mate":    "Male",
	"f":       "Female",
	"female":  "Female",
	"femaie":  "Female",
	"fernale": "Female",
}

// Extractor resolves the gender field from a controlled vocabulary.
type Extractor struct{}

// NewExtractor creates a gender extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Labels implements detector.Extractor.
func (e *Extractor) Labels() []detector.FieldLabel {
	return []detector.FieldLabel{detector.LabelGender}
}

// ExtractLabeled scans the value span after the Gender caption for an
// accepted token. Unrecognized values are discarded, not coerced.
func (e *Extractor) ExtractLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	source := detector.SourceLabeledLine
	confidence := 90.0
	if line.Shape == detector.ShapeMultiField {
		source = detector.SourceMultiFieldLine
		confidence = 75.0
	}

	for _, m := range line.Labels {
		if m.Label != detector.LabelGender {
			continue
		}
		for _, token := range strings.Fields(line.Line.Compare[m.End:]) {
			if canonical, ok := genderTokens[token]; ok {
				return []detector.CandidateValue{{
					Label:      detector.LabelGender,
					Value:      canonical,
					Source:     source,
					Confidence: confidence,
					LineIndex:  line.Line.Raw.Index,
				}}
			}
		}
	}
	return nil
}
