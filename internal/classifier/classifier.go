// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"regexp"
	"strings"

	"cnic-scan/internal/detector"
	"cnic-scan/internal/labels"
)

// Content patterns used by the shape heuristics. These only decide shape;
// the per-field extractors re-validate everything they accept.
var (
	datePattern     = regexp.MustCompile(`\b\d{1,2}[./\- ]\d{1,2}[./\- ]\d{4}\b`)
	identityPattern = regexp.MustCompile(`\d{5}[-\s]?\d{7}[-\s]?\d`)
	contiguousID    = regexp.MustCompile(`\b\d{13}\b`)
	alphaWord       = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Classifier assigns a structural shape to each normalized line using the
// label matcher's output plus content heuristics. Shapes are evaluated in
// a fixed precedence chain (multi-field > label+value > label-only >
// standalone value > noise) so behavior is reproducible line by line.
type Classifier struct {
	matcher *labels.Matcher
}

// New creates a Classifier on top of a label matcher.
func New(matcher *labels.Matcher) *Classifier {
	return &Classifier{matcher: matcher}
}

// Classify determines the shape of every line. Cardinality and order are
// preserved; noise lines pass through with ShapeNoise.
func (c *Classifier) Classify(lines []detector.NormalizedLine) []detector.ClassifiedLine {
	out := make([]detector.ClassifiedLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, c.classifyOne(line))
	}
	return out
}

func (c *Classifier) classifyOne(line detector.NormalizedLine) detector.ClassifiedLine {
	cl := detector.ClassifiedLine{Line: line, Shape: detector.ShapeNoise}
	if line.Noise {
		return cl
	}

	cl.Labels = c.matcher.Match(line.Compare)
	residual := residualContent(line.Compare, cl.Labels)

	switch {
	case len(cl.Labels) >= 2:
		cl.Shape = detector.ShapeMultiField
	case len(cl.Labels) == 1 && hasValueContent(residual):
		cl.Shape = detector.ShapeLabelValue
	case len(cl.Labels) == 1:
		cl.Shape = detector.ShapeLabelOnly
	case IsValuePattern(line.Compare):
		cl.Shape = detector.ShapeStandaloneValue
	}
	return cl
}

// IsValuePattern reports whether unlabeled line content matches a value
// pattern for some field: a date, an identity number, or a plausible name.
func IsValuePattern(compare string) bool {
	if datePattern.MatchString(compare) {
		return true
	}
	if identityPattern.MatchString(compare) || contiguousID.MatchString(compare) {
		return true
	}
	return IsNameLike(compare)
}

// IsNameLike reports whether a line reads as a person name: two to four
// purely alphabetic words of plausible total length, no digits.
func IsNameLike(compare string) bool {
	compare = strings.TrimSpace(compare)
	if len(compare) < 5 || len(compare) > 40 {
		return false
	}
	words := strings.Fields(compare)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if !alphaWord.MatchString(w) {
			return false
		}
	}
	return true
}

// ValueTokenCount counts value tokens (dates, identity numbers) on a line.
// Used to pair a two-label header row with the value row OCR split off it.
func ValueTokenCount(compare string) int {
	count := len(datePattern.FindAllString(compare, -1))
	count += len(identityPattern.FindAllString(compare, -1))
	return count
}

// residualContent removes matched label spans from the line.
func residualContent(compare string, matches []detector.LabelMatch) string {
	if len(matches) == 0 {
		return compare
	}
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		if m.Start > prev {
			b.WriteString(compare[prev:m.Start])
			b.WriteString(" ")
		}
		prev = m.End
	}
	if prev < len(compare) {
		b.WriteString(compare[prev:])
	}
	return b.String()
}

// hasValueContent reports whether residual text still carries a value
// (any letter or digit once separators are gone).
func hasValueContent(residual string) bool {
	for _, r := range residual {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}
