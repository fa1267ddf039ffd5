// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalizer

import (
	"regexp"
	"strings"

	"cnic-scan/internal/detector"
)

// Package-level defaults for the noise vocabulary. Lines equal to one of
// these (after lowercasing and whitespace collapse) carry no field data.
var defaultNoisePhrases = []string{
	"pakistan national identity card",
	"islamic republic of pakistan",
	"national identity card",
	"national identity",
	"holder's signature",
	"holder signature",
	"holders signature",
	"no text detected",
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Separator characters between a label and its value. Digit-adjacent
	// separators are left alone so dates and the identity number reach
	// their extractors unchanged.
	labelSeparator = regexp.MustCompile(`([A-Za-z])\s*[:\-.]\s*`)
)

// Normalizer cleans raw OCR lines into the form the classifier and
// extractors consume. It is stateless apart from its vocabulary tables.
type Normalizer struct {
	noisePhrases map[string]bool
}

// New creates a Normalizer with the default noise vocabulary plus any
// extra phrases from configuration.
func New(extraNoise []string) *Normalizer {
	n := &Normalizer{
		noisePhrases: make(map[string]bool, len(defaultNoisePhrases)+len(extraNoise)),
	}
	for _, p := range defaultNoisePhrases {
		n.noisePhrases[p] = true
	}
	for _, p := range extraNoise {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			n.noisePhrases[p] = true
		}
	}
	return n
}

// Normalize cleans an ordered sequence of raw OCR strings. Output has the
// same cardinality and order as the input; noise lines are flagged, not
// removed, so indexes stay correlated with the source regions.
func (n *Normalizer) Normalize(lines []string) []detector.NormalizedLine {
	out := make([]detector.NormalizedLine, 0, len(lines))
	for i, text := range lines {
		out = append(out, n.normalizeOne(detector.RawLine{Text: text, Index: i}))
	}
	return out
}

func (n *Normalizer) normalizeOne(raw detector.RawLine) detector.NormalizedLine {
	display := strings.TrimSpace(raw.Text)
	display = whitespaceRun.ReplaceAllString(display, " ")

	// Unify label separators ("Name: Ali", "Name - Ali") to a plain space.
	// The pattern anchors on a preceding letter so digit sequences keep
	// their original separators.
	display = labelSeparator.ReplaceAllString(display, "$1 ")
	display = strings.TrimSpace(whitespaceRun.ReplaceAllString(display, " "))

	compare := strings.ToLower(display)

	line := detector.NormalizedLine{
		Raw:     raw,
		Display: display,
		Compare: compare,
	}
	line.Noise = n.isNoise(compare)
	return line
}

// isNoise reports whether a compare-form line is boilerplate or empty.
func (n *Normalizer) isNoise(compare string) bool {
	if len(compare) < 2 {
		return true
	}
	if n.noisePhrases[compare] {
		return true
	}
	// "No text detected" sometimes arrives concatenated with region ids.
	if strings.Contains(compare, "no text detected") {
		return true
	}
	return false
}
