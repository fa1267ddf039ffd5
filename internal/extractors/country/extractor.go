// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package country

import (
	"strings"

	"cnic-scan/internal/detector"
)

// defaultCountries is the controlled vocabulary for the Country of Stay
// field. CNIC overwhelmingly carries Pakistan; the rest cover resident
// cards. Configuration can extend the set.
var defaultCountries = []string{
	"pakistan",
	"afghanistan",
	"india",
	"iran",
	"china",
	"saudi arabia",
	"united arab emirates",
	"uae",
	"united kingdom",
	"uk",
	"united states",
	"usa",
	"canada",
	"australia",
	"turkey",
	"malaysia",
	"indonesia",
}

// Extractor resolves the Country of Stay field against a controlled
// vocabulary. A labeled line with no recognizable country token leaves the
// field unresolved rather than guessing.
type Extractor struct {
	countries map[string]bool
}

// NewExtractor creates a country extractor with the default vocabulary
// plus any additions from configuration.
func NewExtractor(extra []string) *Extractor {
	e := &Extractor{countries: make(map[string]bool, len(defaultCountries)+len(extra))}
	for _, c := range defaultCountries {
		e.countries[c] = true
	}
	for _, c := range extra {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			e.countries[c] = true
		}
	}
	return e
}

// Labels implements detector.Extractor.
func (e *Extractor) Labels() []detector.FieldLabel {
	return []detector.FieldLabel{detector.LabelCountryOfStay}
}

// ExtractLabeled matches the span after the Country of Stay caption
// against the vocabulary, longest phrase first.
func (e *Extractor) ExtractLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	source := detector.SourceLabeledLine
	confidence := 90.0
	if line.Shape == detector.ShapeMultiField {
		source = detector.SourceMultiFieldLine
		confidence = 75.0
	}

	for _, m := range line.Labels {
		if m.Label != detector.LabelCountryOfStay {
			continue
		}
		value, ok := e.lookup(line.Line.Compare[m.End:])
		if !ok {
			continue
		}
		return []detector.CandidateValue{{
			Label:      detector.LabelCountryOfStay,
			Value:      value,
			Source:     source,
			Confidence: confidence,
			LineIndex:  line.Line.Raw.Index,
		}}
	}
	return nil
}

// lookup tries the whole residual span first, then shrinks word by word
// from the right, so "pakistan holder signature" still resolves.
func (e *Extractor) lookup(residual string) (string, bool) {
	words := strings.Fields(residual)
	for end := len(words); end > 0; end-- {
		phrase := strings.Join(words[:end], " ")
		if e.countries[phrase] {
			return titleCase(phrase), true
		}
	}
	return "", false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "uae" || w == "uk" || w == "usa" {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
