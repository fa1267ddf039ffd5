// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"cnic-scan/internal/detector"
)

// Plausible year range for any CNIC date. Issue-before-expiry ordering is
// advisory on the source document and deliberately not enforced here.
const (
	minYear = 1900
	maxYear = 2100
)

var (
	// DD<sep>MM<sep>YYYY with sep in {/ . - space}.
	datePattern = regexp.MustCompile(`\b(\d{1,2})[./\- ](\d{1,2})[./\- ](\d{4})\b`)
)

// keywords supplements the label matcher for date captions it could not
// bind, e.g. a third date caption past the per-line label limit. The
// matcher's own hits always take precedence.
var keywords = []struct {
	word  string
	label detector.FieldLabel
}{
	{"birth", detector.LabelDateOfBirth},
	{"birt", detector.LabelDateOfBirth},
	{"issue", detector.LabelDateOfIssue},
	{"lssue", detector.LabelDateOfIssue},
	{"expiry", detector.LabelDateOfExpiry},
	{"expir", detector.LabelDateOfExpiry},
}

// Extractor pulls birth, issue, and expiry dates out of labeled lines.
type Extractor struct{}

// NewExtractor creates a date extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Labels implements detector.Extractor.
func (e *Extractor) Labels() []detector.FieldLabel {
	return []detector.FieldLabel{
		detector.LabelDateOfBirth,
		detector.LabelDateOfIssue,
		detector.LabelDateOfExpiry,
	}
}

// ExtractLabeled resolves every date caption on the line to the first
// unconsumed date token following it, left to right. Malformed dates are
// discarded, never coerced.
func (e *Extractor) ExtractLabeled(line detector.ClassifiedLine) []detector.CandidateValue {
	compare := line.Line.Compare

	type datePos struct {
		pos   int
		value string
	}
	var dates []datePos
	for _, loc := range datePattern.FindAllStringSubmatchIndex(compare, -1) {
		raw := compare[loc[0]:loc[1]]
		normalized, ok := Normalize(raw)
		if !ok {
			continue
		}
		dates = append(dates, datePos{pos: loc[0], value: normalized})
	}
	if len(dates) == 0 {
		return nil
	}

	type captionPos struct {
		pos   int
		label detector.FieldLabel
	}
	var captions []captionPos
	seen := make(map[detector.FieldLabel]bool)
	for _, m := range line.Labels {
		if !isDateLabel(m.Label) || seen[m.Label] {
			continue
		}
		captions = append(captions, captionPos{pos: m.Start, label: m.Label})
		seen[m.Label] = true
	}
	for _, kw := range keywords {
		if seen[kw.label] {
			continue
		}
		if pos := strings.Index(compare, kw.word); pos >= 0 {
			captions = append(captions, captionPos{pos: pos, label: kw.label})
			seen[kw.label] = true
		}
	}
	if len(captions) == 0 {
		return nil
	}

	// Stable left-to-right pairing: each caption takes the first unused
	// date token that appears after it.
	for i := 1; i < len(captions); i++ {
		for j := i; j > 0 && captions[j].pos < captions[j-1].pos; j-- {
			captions[j], captions[j-1] = captions[j-1], captions[j]
		}
	}

	source := detector.SourceLabeledLine
	confidence := 90.0
	if line.Shape == detector.ShapeMultiField {
		source = detector.SourceMultiFieldLine
		confidence = 75.0
	}

	var out []detector.CandidateValue
	used := make(map[int]bool)
	for _, caption := range captions {
		for i, d := range dates {
			if used[i] || d.pos <= caption.pos {
				continue
			}
			out = append(out, detector.CandidateValue{
				Label:      caption.label,
				Value:      d.value,
				Source:     source,
				Confidence: confidence,
				LineIndex:  line.Line.Raw.Index,
			})
			used[i] = true
			break
		}
	}
	return out
}

func isDateLabel(label detector.FieldLabel) bool {
	switch label {
	case detector.LabelDateOfBirth, detector.LabelDateOfIssue, detector.LabelDateOfExpiry:
		return true
	}
	return false
}

// Normalize validates a raw date token and renders it as DD/MM/YYYY.
// Rejects day outside 1-31, month outside 1-12, and years outside the
// plausible range.
func Normalize(raw string) (string, bool) {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if day < 1 || day > 31 {
		return "", false
	}
	if month < 1 || month > 12 {
		return "", false
	}
	if year < minYear || year > maxYear {
		return "", false
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year), true
}
