// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"regexp"
	"strings"

	"cnic-scan/internal/classifier"
	"cnic-scan/internal/detector"
)

// Card boilerplate words that OCR merges into name regions. Stripped from
// extracted values before validation.
var boilerplateWords = map[string]bool{
	"pakistan": true,
	"national": true,
	"identity": true,
	"card":     true,
	"islamic":  true,
	"republic": true,
	"holder":   true,
	"holders":  true,
}

var (
	validName   = regexp.MustCompile(`^[A-Za-z ]{3,50}$`)
	nonLetterRL = regexp.MustCompile(`^[^A-Za-z]+|[^A-Za-z]+$`)
)

// Extractor resolves the holder name and father name fields.
type Extractor struct{}

// NewExtractor creates a name extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Labels implements detector.Extractor.
func (e *Extractor) Labels() []detector.FieldLabel {
	return []detector.FieldLabel{detector.LabelName, detector.LabelFatherName}
}

// ExtractLabeled takes the value span following a Name or Father Name
// caption. On a line carrying both captions, each value runs up to the
// start of the next caption.
func (e *Extractor) ExtractLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	source := detector.SourceLabeledLine
	confidence := 90.0
	if line.Shape == detector.ShapeMultiField {
		source = detector.SourceMultiFieldLine
		confidence = 75.0
	}

	var out []detector.CandidateValue
	for i, m := range line.Labels {
		if m.Label != detector.LabelName && m.Label != detector.LabelFatherName {
			continue
		}
		end := len(line.Line.Display)
		if i+1 < len(line.Labels) {
			end = line.Labels[i+1].Start
		}
		if m.End >= end {
			continue
		}
		value, ok := Clean(line.Line.Display[m.End:end])
		if !ok {
			continue
		}
		out = append(out, detector.CandidateValue{
			Label:      m.Label,
			Value:      value,
			Source:     source,
			Confidence: confidence,
			LineIndex:  line.Line.Raw.Index,
		})
	}
	return out
}

// FallbackCandidates recovers names from unlabeled name-pattern lines, in
// their original input order. The first such line is proposed as the
// father name and the second as the holder name: on the card face the
// father's name is printed above the holder's, so this order is a layout
// rule and must not be reversed. The assembler only admits these when no
// labeled candidate exists for the field.
func FallbackCandidates(lines []detector.ClassifiedLine) []detector.CandidateValue {
	var names []detector.CandidateValue
	for _, cl := range lines {
		if cl.Shape != detector.ShapeStandaloneValue {
			continue
		}
		if !classifier.IsNameLike(cl.Line.Compare) {
			continue
		}
		value, ok := Clean(cl.Line.Display)
		if !ok {
			continue
		}
		names = append(names, detector.CandidateValue{
			Value:      value,
			Source:     detector.SourceStandaloneFallback,
			Confidence: 55.0,
			LineIndex:  cl.Line.Raw.Index,
		})
		if len(names) == 2 {
			break
		}
	}

	if len(names) >= 1 {
		names[0].Label = detector.LabelFatherName
	}
	if len(names) == 2 {
		names[1].Label = detector.LabelName
	}
	return names
}

// Clean trims separator and boilerplate noise off a raw name span and
// validates the remainder: alphabetic words with spaces, plausible length,
// at least two words. Returns the title-cased value.
func Clean(raw string) (string, bool) {
	raw = nonLetterRL.ReplaceAllString(strings.TrimSpace(raw), "")

	words := strings.Fields(raw)
	kept := words[:0]
	for _, w := range words {
		if boilerplateWords[strings.ToLower(w)] {
			continue
		}
		kept = append(kept, w)
	}
	value := strings.Join(kept, " ")

	if !validName.MatchString(value) || len(kept) < 2 {
		return "", false
	}
	return titleCase(value), true
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
