// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package identity

import (
	"fmt"
	"regexp"
	"strings"

	"cnic-scan/internal/detector"
)

// CNIC identity numbers are XXXXX-XXXXXXX-X. OCR drops or substitutes the
// group separators, so the pattern tolerates the same separator set as
// dates between the digit groups.
var identityPattern = regexp.MustCompile(`\b\d{5}[ \-./]?\d{7}[ \-./]?\d\b`)

// Extractor pulls the 13-digit identity number out of labeled or
// standalone lines.
type Extractor struct{}

// NewExtractor creates an identity-number extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Labels implements detector.Extractor.
func (e *Extractor) Labels() []detector.FieldLabel {
	return []detector.FieldLabel{detector.LabelIdentityNumber}
}

// ExtractLabeled extracts the identity number from a line that carries the
// Identity Number caption. Lines matched to other captions only are left
// to the standalone pass.
func (e *Extractor) ExtractLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	labeled := false
	for _, m := range line.Labels {
		if m.Label == detector.LabelIdentityNumber {
			labeled = true
			break
		}
	}
	if !labeled {
		return nil
	}

	source := detector.SourceLabeledLine
	confidence := 90.0
	if line.Shape == detector.ShapeMultiField {
		source = detector.SourceMultiFieldLine
		confidence = 75.0
	}
	return e.extract(line, source, confidence)
}

// ExtractStandalone extracts the identity number from an unlabeled line.
// The pattern is unambiguous, so a bare number line is still usable.
func (e *Extractor) ExtractStandalone(line detector.ClassifiedLine) []detector.CandidateValue {
	return e.extract(line, detector.SourceStandaloneFallback, 55.0)
}

func (e *Extractor) extract(line detector.ClassifiedLine, source detector.CandidateSource, confidence float64) []detector.CandidateValue {
	match := identityPattern.FindString(line.Line.Compare)
	if match == "" {
		return nil
	}
	normalized, ok := Normalize(match)
	if !ok {
		return nil
	}
	return []detector.CandidateValue{{
		Label:      detector.LabelIdentityNumber,
		Value:      normalized,
		Source:     source,
		Confidence: confidence,
		LineIndex:  line.Line.Raw.Index,
	}}
}

// Normalize strips separators from a matched token and re-inserts the
// canonical hyphens at positions 5 and 12. Anything other than exactly 13
// digits is rejected.
func Normalize(raw string) (string, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if len(digits) != 13 {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%s", digits[:5], digits[5:12], digits[12:]), true
}
